// Command topoctl inspects and exports topochat sessions straight from
// the database, without going through the HTTP API.
package main

func main() {
	Execute()
}
