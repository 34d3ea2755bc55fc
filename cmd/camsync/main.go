// Command camsync syncs YAML camera catalog files into the pricing
// database.
package main

func main() {
	Execute()
}
