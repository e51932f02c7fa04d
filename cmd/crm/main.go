package main

import "github.com/vfg2006/crm-tracker-api/internal/cli"

func main() {
	cli.Execute()
}
