// Command graphsrv runs the networked graph-computation service.
//
// Usage: graphsrv <port> [threads]
//
// threads defaults to the number of online CPUs. Exit code 2 signals a
// usage/argument error, 1 a socket setup failure.
package main

import (
	"fmt"
	"os"
	"runtime"
	"strconv"

	"github.com/kpavlov/graphsrv/server"
)

func main() {
	os.Exit(run(os.Args[1:]))
}

func run(args []string) int {
	if len(args) < 1 || len(args) > 2 {
		fmt.Fprintf(os.Stderr, "Usage: graphsrv <port> [threads]\n")
		return 2
	}

	port, err := strconv.Atoi(args[0])
	if err != nil || port < 1 || port > 65535 {
		fmt.Fprintf(os.Stderr, "Invalid port\n")
		return 2
	}

	nthreads := runtime.NumCPU()
	if len(args) == 2 {
		nthreads, err = strconv.Atoi(args[1])
		if err != nil {
			fmt.Fprintf(os.Stderr, "Invalid threads\n")
			return 2
		}
	}
	if nthreads < 1 {
		nthreads = 1
	}

	srv, err := server.New(fmt.Sprintf(":%d", port), nthreads)
	if err != nil {
		fmt.Fprintf(os.Stderr, "socket: %v\n", err)
		return 1
	}

	srv.Wait()
	return 0
}
