package notification

import (
	"context"
	"errors"
	"fmt"
	"time"
)

var ErrNotFound = errors.New("notification not found")

// Service writes and reads the in-app notification feed. The lead and order
// services call the Notify* methods through their own narrow interfaces.
type Service struct {
	repo NotificationRepository
}

func NewService(repo NotificationRepository) *Service {
	return &Service{repo: repo}
}

func (s *Service) create(ctx context.Context, userID int64, t Type, title, body string) error {
	return s.repo.Create(ctx, &Notification{
		UserID: userID,
		Type:   t,
		Title:  title,
		Body:   body,
	})
}

func (s *Service) NotifyLeadClaimed(ctx context.Context, repID, leadID int64, leadName string) error {
	return s.create(ctx, repID, TypeLeadClaimed,
		"Lead claimed",
		fmt.Sprintf("You claimed lead #%d (%s). The verification window is now running.", leadID, leadName))
}

func (s *Service) NotifyLeadConverted(ctx context.Context, repID, leadID, orderID int64) error {
	return s.create(ctx, repID, TypeLeadConverted,
		"Lead converted",
		fmt.Sprintf("Lead #%d was converted into order #%d.", leadID, orderID))
}

func (s *Service) NotifyLeadStale(ctx context.Context, repID, leadID int64, leadName string) error {
	return s.create(ctx, repID, TypeLeadStale,
		"Claimed lead needs attention",
		fmt.Sprintf("Lead #%d (%s) has been sitting in your queue without movement.", leadID, leadName))
}

func (s *Service) NotifyOrderAssigned(ctx context.Context, userID, orderID int64, reference string) error {
	return s.create(ctx, userID, TypeOrderAssigned,
		"Order assigned to you",
		fmt.Sprintf("Order %s (#%d) was assigned to you.", reference, orderID))
}

// List returns the user's latest notifications plus the unread count.
func (s *Service) List(ctx context.Context, userID int64, limit int) ([]Notification, int64, error) {
	if limit <= 0 || limit > 100 {
		limit = 20
	}
	list, err := s.repo.ListByUser(ctx, userID, limit)
	if err != nil {
		return nil, 0, err
	}
	unread, err := s.repo.CountUnread(ctx, userID)
	if err != nil {
		return nil, 0, err
	}
	return list, unread, nil
}

func (s *Service) MarkRead(ctx context.Context, id, userID int64) error {
	ok, err := s.repo.MarkRead(ctx, id, userID, time.Now())
	if err != nil {
		return err
	}
	if !ok {
		return ErrNotFound
	}
	return nil
}

func (s *Service) MarkAllRead(ctx context.Context, userID int64) error {
	return s.repo.MarkAllRead(ctx, userID, time.Now())
}
