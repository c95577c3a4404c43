/*
Package rotfile rotates the contents of files and text in place using package
rotate.

# Files

File treats a file as a sequence of fixed-size records and rotates it without
reading it into a second buffer. On unix systems the file is memory-mapped
read-write and flushed with msync; on other platforms it is read, rotated and
written back.

	res, err := rotfile.File("frames.bin", 3, rotate.DirLeft, &rotfile.Options{
	    RecordSize:   64,
	    CreateBackup: true,
	})
	if err != nil {
	    log.Fatal(err)
	}
	fmt.Printf("rotated %d records\n", res.Records)

# Text

Text rotates the characters of encoded text rather than its bytes, so
multi-byte characters stay intact:

	out, err := rotfile.Text([]byte("héllo"), 1, rotate.DirLeft, "utf-8")
	// string(out) == "élloh"
*/
package rotfile
