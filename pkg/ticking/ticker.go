// Package ticking delivers the monitor's periodic trigger. It is built on a
// CLOCK_MONOTONIC timerfd registered with epoll, so a tick that is serviced
// late simply reports the number of missed expirations instead of drifting.
package ticking

import (
	"encoding/binary"
	"fmt"
	"time"

	"golang.org/x/sys/unix"
)

// Ticker wraps the timer and epoll descriptors. Not safe for concurrent
// use; the monitor loop is the only caller.
type Ticker struct {
	timerFD int
	epollFD int
}

// New arms a periodic timer with the given interval. The first expiry is
// set one nanosecond out: a zero initial value would leave the timer
// disarmed.
func New(interval time.Duration) (*Ticker, error) {
	tfd, err := unix.TimerfdCreate(unix.CLOCK_MONOTONIC, 0)
	if err != nil {
		return nil, fmt.Errorf("timerfd_create: %w", err)
	}

	spec := unix.ItimerSpec{
		Interval: unix.NsecToTimespec(interval.Nanoseconds()),
		Value:    unix.Timespec{Nsec: 1},
	}
	if err := unix.TimerfdSettime(tfd, 0, &spec, nil); err != nil {
		unix.Close(tfd)
		return nil, fmt.Errorf("timerfd_settime: %w", err)
	}

	epfd, err := unix.EpollCreate1(0)
	if err != nil {
		unix.Close(tfd)
		return nil, fmt.Errorf("epoll_create1: %w", err)
	}

	ev := unix.EpollEvent{Events: unix.EPOLLIN, Fd: int32(tfd)}
	if err := unix.EpollCtl(epfd, unix.EPOLL_CTL_ADD, tfd, &ev); err != nil {
		unix.Close(tfd)
		unix.Close(epfd)
		return nil, fmt.Errorf("epoll_ctl: %w", err)
	}

	return &Ticker{timerFD: tfd, epollFD: epfd}, nil
}

// Wait blocks until the timer fires and returns how many intervals expired
// since the previous read. Values above 1 mean the loop is lagging behind
// real time.
func (t *Ticker) Wait() (uint64, error) {
	events := make([]unix.EpollEvent, 1)
	for {
		n, err := unix.EpollWait(t.epollFD, events, -1)
		if err == unix.EINTR {
			continue
		}
		if err != nil {
			return 0, fmt.Errorf("epoll_wait: %w", err)
		}
		if n > 0 {
			break
		}
	}

	var buf [8]byte
	if _, err := unix.Read(t.timerFD, buf[:]); err != nil {
		return 0, fmt.Errorf("read timerfd: %w", err)
	}
	return binary.NativeEndian.Uint64(buf[:]), nil
}

// Close releases both descriptors.
func (t *Ticker) Close() {
	unix.Close(t.timerFD)
	unix.Close(t.epollFD)
}
