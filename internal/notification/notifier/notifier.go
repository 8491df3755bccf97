package notifier

import "log"

// Notifier abstracts the delivery channel (console now, email/SMS later).
type Notifier interface {
	Notify(subject, message string) error
}

type ConsoleNotifier struct{}

func NewConsole() *ConsoleNotifier {
	return &ConsoleNotifier{}
}

func (c *ConsoleNotifier) Notify(subject, message string) error {
	log.Printf("[notify] %s :: %s\n", subject, message)
	return nil
}
