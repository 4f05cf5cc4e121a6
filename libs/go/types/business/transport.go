package business

// ConnectionStatus is the outcome of a transport health probe. It carries
// no recipient or batch state.
type ConnectionStatus struct {
	OK      bool
	Message string
}
