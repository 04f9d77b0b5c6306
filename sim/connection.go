package sim

// SendError marks a failure to send or receive.
type SendError struct{}

// NewSendError creates a SendError.
func NewSendError() *SendError {
	e := new(SendError)
	return e
}

// A Connection is responsible for delivering messages to their destinations.
type Connection interface {
	Named
	Hookable

	// PlugIn connects a port to the connection. The sourceSideBufSize is the
	// number of messages that the connection can buffer from the port.
	PlugIn(port Port, sourceSideBufSize int)

	// NotifyAvailable is called by a port to notify the connection that it
	// can deliver to the port again.
	NotifyAvailable(port Port)

	// NotifySend is called by a port to notify the connection that there is
	// a message ready to be forwarded.
	NotifySend()
}
