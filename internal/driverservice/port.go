package driverservice

import (
	"net"

	"github.com/pkg/errors"
)

// FreePort finds random available loopback port for a driver process to listen on
func FreePort() (int, error) {
	addr, err := net.ResolveTCPAddr("tcp", "127.0.0.1:0")
	if err != nil {
		return 0, err
	}

	l, err := net.ListenTCP("tcp", addr)
	if err != nil {
		return 0, errors.Wrap(err, "failed to find free port")
	}
	defer l.Close()

	listenAddr, _ := l.Addr().(*net.TCPAddr)

	return listenAddr.Port, nil
}
