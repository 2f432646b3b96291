package main

import (
	"fmt"
	"os"

	"example.com/simple/util"
)

func main() {
	fmt.Println(util.Upper(os.Args[0]))
}
