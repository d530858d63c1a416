// Package mailer delivers transactional email off the request path.
package mailer

import (
	"fmt"
	"net/smtp"
	"strings"
	"sync"

	"qenea/internal/config"
	"qenea/internal/middleware"
	"qenea/internal/observability"
)

// Message is one outbound email.
type Message struct {
	To      string
	Subject string
	Body    string
}

// Sender delivers a single message.
type Sender interface {
	Send(msg Message) error
}

// SMTPSender delivers mail over plain SMTP with optional auth.
type SMTPSender struct {
	Host     string
	Port     string
	Username string
	Password string
	From     string
}

// NewSMTPSender builds a sender from config.
func NewSMTPSender(cfg *config.Config) *SMTPSender {
	return &SMTPSender{
		Host:     cfg.SMTPHost,
		Port:     cfg.SMTPPort,
		Username: cfg.SMTPUser,
		Password: cfg.SMTPPassword,
		From:     cfg.MailFrom,
	}
}

func (s *SMTPSender) Send(msg Message) error {
	var body strings.Builder
	fmt.Fprintf(&body, "From: %s\r\n", s.From)
	fmt.Fprintf(&body, "To: %s\r\n", msg.To)
	fmt.Fprintf(&body, "Subject: %s\r\n", msg.Subject)
	body.WriteString("MIME-Version: 1.0\r\nContent-Type: text/plain; charset=utf-8\r\n\r\n")
	body.WriteString(msg.Body)

	addr := s.Host + ":" + s.Port
	var auth smtp.Auth
	if s.Username != "" {
		auth = smtp.PlainAuth("", s.Username, s.Password, s.Host)
	}
	if err := smtp.SendMail(addr, auth, s.From, []string{msg.To}, []byte(body.String())); err != nil {
		return fmt.Errorf("smtp send to %s: %w", msg.To, err)
	}
	return nil
}

// Worker drains a bounded queue of messages on a background goroutine so
// request handlers never wait on SMTP. A full queue drops the message with a
// log line rather than blocking.
type Worker struct {
	sender Sender
	queue  chan Message
	wg     sync.WaitGroup

	mu     sync.Mutex
	closed bool
}

// NewWorker starts a mail worker with the given queue capacity.
func NewWorker(sender Sender, capacity int) *Worker {
	if capacity <= 0 {
		capacity = 64
	}
	w := &Worker{
		sender: sender,
		queue:  make(chan Message, capacity),
	}
	w.wg.Add(1)
	go w.run()
	return w
}

func (w *Worker) run() {
	defer w.wg.Done()
	for msg := range w.queue {
		observability.MailQueueDepth.Set(float64(len(w.queue)))
		if err := w.sender.Send(msg); err != nil {
			observability.MailDeliveries.WithLabelValues("error").Inc()
			middleware.Logger.Error("mail delivery failed", "to", msg.To, "error", err)
			continue
		}
		observability.MailDeliveries.WithLabelValues("ok").Inc()
	}
}

// Enqueue queues a message for delivery. It never blocks; when the queue is
// full the message is dropped and logged.
func (w *Worker) Enqueue(msg Message) {
	w.mu.Lock()
	defer w.mu.Unlock()
	if w.closed {
		middleware.Logger.Warn("mail worker closed, dropping message", "to", msg.To)
		return
	}
	select {
	case w.queue <- msg:
		observability.MailQueueDepth.Set(float64(len(w.queue)))
	default:
		observability.MailDeliveries.WithLabelValues("dropped").Inc()
		middleware.Logger.Warn("mail queue full, dropping message", "to", msg.To)
	}
}

// Close stops intake and waits for queued messages to drain.
func (w *Worker) Close() {
	w.mu.Lock()
	if w.closed {
		w.mu.Unlock()
		return
	}
	w.closed = true
	close(w.queue)
	w.mu.Unlock()
	w.wg.Wait()
}
