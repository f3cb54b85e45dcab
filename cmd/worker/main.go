package main

import (
	"log"
	"os"
)

func main() {
	if len(os.Args) < 2 {
		log.Fatal("usage: worker sync | convert <csvPath> | migrate")
	}

	switch os.Args[1] {
	case "sync":
		RunSync()
	case "convert":
		RunConvert(os.Args[2:])
	case "migrate":
		RunMigrate()
	default:
		log.Fatalf("unknown command: %s", os.Args[1])
	}
}
