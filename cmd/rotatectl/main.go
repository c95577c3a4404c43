// Command rotatectl rotates sequences, files and text in place.
package main

func main() {
	execute()
}
