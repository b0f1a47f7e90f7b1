package collecting

const (
	pageSizeKiB     = 4 // kernel reports RSS in 4 KiB pages
	topProcessCount = 5
	netHeaderLines  = 2
	stateRunning    = 'R'
)
