package main

import (
	"runtime"

	"github.com/ThatOtherAndrew/Dotfield/cmd"
)

func init() {
	runtime.LockOSThread()
}

func main() {
	cmd.Execute()
}
