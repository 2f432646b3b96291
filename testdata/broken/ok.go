package broken

import "fmt"

// Hello greets.
func Hello() string {
	return fmt.Sprintf("hello")
}
