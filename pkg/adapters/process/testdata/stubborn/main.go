// Command stubborn ignores interrupts and must be killed.
package main

import (
	"fmt"
	"os"
	"os/signal"
	"syscall"
	"time"
)

func main() {
	sigs := make(chan os.Signal, 1)
	signal.Notify(sigs, syscall.SIGINT, syscall.SIGTERM)

	fmt.Println("suite started")

	go func() {
		for s := range sigs {
			fmt.Printf("ignoring %v\n", s)
		}
	}()

	for {
		time.Sleep(time.Second)
	}
}
