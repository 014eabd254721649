//go:build !unix

package pkg

import "syscall"

func reuseAddrControl(network, address string, c syscall.RawConn) error {
	return nil
}
