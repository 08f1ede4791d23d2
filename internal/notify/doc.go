// Package notify delivers tracking notifications: to the terminal, to an
// AMQP topic exchange, or to several sinks at once.
package notify
