package postgre

import "fmt"

// errorf wraps a driver error under one of the repository sentinels.
func errorf(sentinel, err error) error {
	return fmt.Errorf("%w: %v", sentinel, err)
}
