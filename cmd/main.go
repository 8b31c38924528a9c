package main

import (
	"github.com/tarantool/prometheus/cmd/agent"
)

func main() {
	agent.Execute()
}
