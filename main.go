/*
	Copyright 2024 Apexview Developers
*/

package main

import "github.com/apexview/f1telemetry-service-go/cmd"

func main() {
	cmd.Execute()
}
