package main

import "github.com/cmmoran/asn1proto/cmd"

func main() {
	cmd.Execute()
}
