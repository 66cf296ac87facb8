// Command leitner runs the Leitner flashcard API and its maintenance tasks.
//
// Exit codes: 0 = success, 1 = error.
package main

import "os"

func main() {
	if err := newRootCmd().Execute(); err != nil {
		os.Exit(1)
	}
}
