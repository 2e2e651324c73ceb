package portfolio

import (
	"context"
	"fmt"
)

// ListMessages returns contact messages newest first.
func (s *Service) ListMessages(ctx context.Context) ([]Message, error) {
	msgs, err := s.messages.List(ctx)
	if err != nil {
		return nil, err
	}
	return reverse(msgs), nil
}

// GetMessage returns one contact message.
func (s *Service) GetMessage(ctx context.Context, id int64) (Message, error) {
	m, err := s.messages.Get(ctx, id)
	return m, translate(CollectionMessages, id, err)
}

// CreateMessage stores a contact-form submission, then alerts the owner by
// e-mail in the background. Delivery problems are logged, never returned.
func (s *Service) CreateMessage(ctx context.Context, in MessageInput) (Message, error) {
	now := s.timestamp()
	m, err := s.messages.Insert(ctx, func(id int64) Message {
		return Message{
			ID:        id,
			Name:      in.Name,
			Email:     in.Email,
			Subject:   in.Subject,
			Message:   in.Message,
			CreatedAt: now,
		}
	})
	if err != nil {
		return Message{}, err
	}

	s.events.Publish(EventMessageCreated, m)
	s.notifyOwner(ctx, m)
	return m, nil
}

func (s *Service) notifyOwner(ctx context.Context, m Message) {
	if s.notifier == nil {
		s.log.WarnContext(ctx, "email notifications not configured, message saved without alert", "message_id", m.ID)
		return
	}

	bg := context.WithoutCancel(ctx)
	s.notifyWG.Add(1)
	go func() {
		defer s.notifyWG.Done()

		nctx, cancel := context.WithTimeout(bg, s.notifyTimeout)
		defer cancel()

		if err := s.notifier.NotifyNewMessage(nctx, m.Name, m.Email, m.Subject, m.Message); err != nil {
			s.log.WarnContext(nctx, "failed to send message notification", "message_id", m.ID, "error", err)
			return
		}
		s.log.InfoContext(nctx, "message notification sent", "message_id", m.ID)
	}()
}

// UpdateMessage sets the read flag.
func (s *Service) UpdateMessage(ctx context.Context, id int64, patch MessagePatch) (Message, error) {
	m, err := s.GetMessage(ctx, id)
	if err != nil {
		return Message{}, err
	}

	merge(&m.IsRead, patch.IsRead)

	if err := translate(CollectionMessages, id, s.messages.Update(ctx, id, m)); err != nil {
		return Message{}, err
	}
	s.events.Publish(EventMessageUpdated, m)
	return m, nil
}

// DeleteMessage removes a contact message.
func (s *Service) DeleteMessage(ctx context.Context, id int64) error {
	if err := translate(CollectionMessages, id, s.messages.Delete(ctx, id)); err != nil {
		return err
	}
	s.events.Publish(EventMessageDeleted, map[string]int64{"id": id})
	return nil
}

// ReplyToMessage e-mails the owner's reply to a visitor and returns the
// provider's e-mail id. Any delivery problem wraps ErrDeliveryFailed.
func (s *Service) ReplyToMessage(ctx context.Context, in ReplyInput) (string, error) {
	if _, err := s.GetMessage(ctx, in.MessageID); err != nil {
		return "", err
	}
	if s.notifier == nil {
		return "", fmt.Errorf("%w: notifier not configured", ErrDeliveryFailed)
	}

	id, err := s.notifier.SendReply(ctx, in.RecipientEmail, in.ReplyText)
	if err != nil {
		s.log.ErrorContext(ctx, "failed to send reply", "message_id", in.MessageID, "error", err)
		return "", fmt.Errorf("%w: %w", ErrDeliveryFailed, err)
	}
	s.log.InfoContext(ctx, "reply sent", "message_id", in.MessageID, "email_id", id)
	return id, nil
}
