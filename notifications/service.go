// Copyright (c) Partlane
// SPDX-License-Identifier: Apache-2.0

package notifications

import (
	"context"
	"fmt"
	"time"

	"github.com/partlane/qnotify"
	"github.com/partlane/qnotify/assets"
	"github.com/partlane/qnotify/bpn"
	"github.com/partlane/qnotify/pkg/errors"
	repoerr "github.com/partlane/qnotify/pkg/errors/repository"
	svcerr "github.com/partlane/qnotify/pkg/errors/service"
)

// Fields whose filter values come from closed enumerations rather than
// the store. Prefix, limit and side are deliberately ignored for these;
// the domains are small and static.
var supportedEnumFields = map[string]func() []string{
	"status":            StatusValues,
	"side":              SideValues,
	"messages_severity": SeverityValues,
	"type":              TypeValues,
}

type service struct {
	repo        Repository
	assets      assets.Repository
	partners    bpn.Repository
	transport   Transport
	idProvider  qnotify.IDProvider
	msgProvider qnotify.IDProvider
	ownBpn      string
	transitions Transitions
	locks       *keyedMutex
}

var _ Service = (*service)(nil)

// New returns the notification orchestration service. The transition
// table is deployment configuration agreed between the two parties.
func New(repo Repository, assetRepo assets.Repository, partnerRepo bpn.Repository, transport Transport, idProvider, msgProvider qnotify.IDProvider, ownBpn string, transitions Transitions) Service {
	return &service{
		repo:        repo,
		assets:      assetRepo,
		partners:    partnerRepo,
		transport:   transport,
		idProvider:  idProvider,
		msgProvider: msgProvider,
		ownBpn:      ownBpn,
		transitions: transitions,
		locks:       newKeyedMutex(),
	}
}

func (svc *service) Start(ctx context.Context, sn StartNotification) (string, error) {
	if err := svc.validateReceiver(sn.ReceiverBpn); err != nil {
		return "", err
	}

	affected, err := svc.assets.RetrieveByIDs(ctx, sn.AffectedPartIDs)
	if err != nil {
		return "", errors.Wrap(svcerr.ErrCreateEntity, err)
	}

	mapping, err := svc.partners.Resolve(ctx, sn.ReceiverBpn)
	if err != nil {
		return "", errors.Wrap(svcerr.ErrCreateEntity, err)
	}
	endpoints, err := svc.ownerEndpoints(ctx, affected)
	if err != nil {
		return "", errors.Wrap(svcerr.ErrCreateEntity, err)
	}

	id, err := svc.idProvider.ID()
	if err != nil {
		return "", errors.Wrap(svcerr.ErrIssueProviderID, err)
	}

	now := time.Now().UTC()
	n := Notification{
		ID:              id,
		Title:           sn.Title,
		Description:     sn.Description,
		Bpn:             sn.ReceiverBpn,
		Type:            sn.Type,
		Side:            SenderSide,
		Severity:        sn.Severity,
		TargetDate:      sn.TargetDate,
		AffectedPartIDs: sn.AffectedPartIDs,
		CreatedAt:       now,
	}

	msgs, err := InitialMessages(affected, svc.ownBpn, sn.ReceiverBpn, mapping.URL, endpoints, sn, svc.msgProvider.ID)
	if err != nil {
		return "", errors.Wrap(svcerr.ErrIssueProviderID, err)
	}
	if err := n.AddMessages(msgs); err != nil {
		return "", err
	}

	// Creation is a local draft, no hand-off happens here.
	if err := ctx.Err(); err != nil {
		return "", err
	}
	saved, err := svc.repo.Save(ctx, n)
	if err != nil {
		return "", errors.Wrap(svcerr.ErrCreateEntity, err)
	}

	return saved, nil
}

func (svc *service) Find(ctx context.Context, id string) (Notification, error) {
	return svc.loadOrNotFound(ctx, id)
}

func (svc *service) FindByEdcNotificationID(ctx context.Context, edcNotificationID string) (Notification, error) {
	n, err := svc.repo.RetrieveByEdcNotificationID(ctx, edcNotificationID)
	if err != nil {
		return Notification{}, errors.Wrap(ErrNotFound, err)
	}
	return n, nil
}

func (svc *service) List(ctx context.Context, pm PageMetadata) (Page, error) {
	page, err := svc.repo.RetrieveAll(ctx, pm)
	if err != nil {
		return Page{}, errors.Wrap(svcerr.ErrViewEntity, err)
	}
	return page, nil
}

func (svc *service) Approve(ctx context.Context, id string) error {
	unlock := svc.locks.Lock(id)
	defer unlock()

	n, err := svc.loadOrNotFound(ctx, id)
	if err != nil {
		return err
	}

	created := n.MessagesInStatus(CreatedStatus)
	approved := make([]Message, 0, len(created))
	now := time.Now().UTC()
	for _, msg := range created {
		msgID, err := svc.msgProvider.ID()
		if err != nil {
			return errors.Wrap(svcerr.ErrIssueProviderID, err)
		}
		msg.ID = msgID
		msg.Status = SentStatus
		msg.CreatedAt = now
		approved = append(approved, msg)
	}

	if err := n.AddMessages(approved); err != nil {
		return err
	}

	return svc.publish(ctx, n, approved)
}

func (svc *service) Cancel(ctx context.Context, id string) error {
	unlock := svc.locks.Lock(id)
	defer unlock()

	n, err := svc.loadOrNotFound(ctx, id)
	if err != nil {
		return err
	}
	if _, err := n.Status(); err != nil {
		return err
	}

	now := time.Now().UTC()
	var mirrored []Message
	for _, msg := range n.LeafMessages() {
		if msg.Status.Terminal() {
			continue
		}
		msgID, err := svc.msgProvider.ID()
		if err != nil {
			return errors.Wrap(svcerr.ErrIssueProviderID, err)
		}
		msg.ID = msgID
		msg.Status = CanceledStatus
		msg.CreatedAt = now
		mirrored = append(mirrored, msg)
	}

	if err := n.AddMessages(mirrored); err != nil {
		return err
	}

	return svc.publish(ctx, n, mirrored)
}

func (svc *service) UpdateStatusTransition(ctx context.Context, id string, status Status, reason string) error {
	preds, ok := svc.transitions.Predecessors(status)
	if !ok {
		return errors.Wrap(ErrInvalidTransition, fmt.Errorf("status %s", status))
	}

	unlock := svc.locks.Lock(id)
	defer unlock()

	n, err := svc.loadOrNotFound(ctx, id)
	if err != nil {
		return err
	}

	// Several messages may share the predecessor status when the
	// notification fans out to multiple parts. All of them are advanced.
	eligible := n.MessagesInStatus(preds...)
	if len(eligible) == 0 {
		return errors.Wrap(ErrInvalidTransition, fmt.Errorf("no message eligible for %s", status))
	}

	now := time.Now().UTC()
	advanced := make([]Message, 0, len(eligible))
	for _, msg := range eligible {
		msgID, err := svc.msgProvider.ID()
		if err != nil {
			return errors.Wrap(svcerr.ErrIssueProviderID, err)
		}
		reply := msg.SwitchSenderAndReceiver()
		reply.ID = msgID
		reply.Status = status
		reply.Description = reason
		reply.CreatedAt = now
		advanced = append(advanced, reply)
	}

	if err := n.AddMessages(advanced); err != nil {
		return err
	}

	return svc.publish(ctx, n, advanced)
}

func (svc *service) Edit(ctx context.Context, en EditNotification) error {
	if en.ReceiverBpn != nil {
		if err := svc.validateReceiver(*en.ReceiverBpn); err != nil {
			return err
		}
	}

	unlock := svc.locks.Lock(en.ID)
	defer unlock()

	n, err := svc.loadOrNotFound(ctx, en.ID)
	if err != nil {
		return err
	}

	partIDs := n.AffectedPartIDs
	if en.AffectedPartIDs != nil {
		partIDs = en.AffectedPartIDs
	}
	affected, err := svc.assets.RetrieveByIDs(ctx, partIDs)
	if err != nil {
		return errors.Wrap(svcerr.ErrUpdateEntity, err)
	}

	receiver := n.Bpn
	if en.ReceiverBpn != nil {
		receiver = *en.ReceiverBpn
	}
	mapping, err := svc.partners.Resolve(ctx, receiver)
	if err != nil {
		return errors.Wrap(svcerr.ErrUpdateEntity, err)
	}
	endpoints, err := svc.ownerEndpoints(ctx, affected)
	if err != nil {
		return errors.Wrap(svcerr.ErrUpdateEntity, err)
	}

	// Re-drafting is the one operation that discards history instead of
	// appending to it.
	oldIDs := n.MessageIDs()
	if err := svc.repo.DeleteMessages(ctx, oldIDs); err != nil {
		return errors.Wrap(svcerr.ErrRemoveEntity, err)
	}
	n.ClearMessages()

	n.Title = en.Title
	n.Bpn = receiver
	if en.Description != nil {
		n.Description = *en.Description
	}
	if en.AffectedPartIDs != nil {
		n.AffectedPartIDs = en.AffectedPartIDs
	}
	if en.Severity != nil {
		n.Severity = *en.Severity
	}
	if en.TargetDate != nil {
		n.TargetDate = *en.TargetDate
	}
	n.UpdatedAt = time.Now().UTC()

	sn := StartNotification{
		Description: n.Description,
		Severity:    n.Severity,
		TargetDate:  n.TargetDate,
	}
	msgs, err := InitialMessages(affected, svc.ownBpn, receiver, mapping.URL, endpoints, sn, svc.msgProvider.ID)
	if err != nil {
		return errors.Wrap(svcerr.ErrIssueProviderID, err)
	}
	if err := n.AddMessages(msgs); err != nil {
		return err
	}

	if err := ctx.Err(); err != nil {
		return err
	}
	if err := svc.repo.Update(ctx, n); err != nil {
		return errors.Wrap(svcerr.ErrUpdateEntity, err)
	}

	return nil
}

func (svc *service) DistinctFilterValues(ctx context.Context, field, startsWith string, limit int64, side Side) ([]string, error) {
	if values, ok := supportedEnumFields[field]; ok {
		return values(), nil
	}

	values, err := svc.repo.DistinctFieldValues(ctx, field, startsWith, limit, side)
	if err != nil {
		return nil, errors.Wrap(svcerr.ErrViewEntity, err)
	}
	return values, nil
}

func (svc *service) HandleReceive(ctx context.Context, msg Message) error {
	if msg.SenderBpn == msg.ReceiverBpn {
		return errors.Wrap(ErrSameBpn, fmt.Errorf("bpn %s", msg.SenderBpn))
	}
	if msg.CreatedAt.IsZero() {
		msg.CreatedAt = time.Now().UTC()
	}
	if msg.ID == "" {
		msgID, err := svc.msgProvider.ID()
		if err != nil {
			return errors.Wrap(svcerr.ErrIssueProviderID, err)
		}
		msg.ID = msgID
	}

	n, err := svc.repo.RetrieveByEdcNotificationID(ctx, msg.EdcNotificationID)
	switch {
	case err == nil:
		unlock := svc.locks.Lock(n.ID)
		defer unlock()

		if err := n.AddMessage(msg); err != nil {
			return err
		}
		if err := svc.repo.Update(ctx, n); err != nil {
			return errors.Wrap(svcerr.ErrUpdateEntity, err)
		}
		return nil
	case !errors.Contains(err, repoerr.ErrNotFound):
		// A store failure must not fork a duplicate conversation.
		return errors.Wrap(svcerr.ErrViewEntity, err)
	}

	// First contact from this counterparty, open a receiver-side aggregate.
	id, err := svc.idProvider.ID()
	if err != nil {
		return errors.Wrap(svcerr.ErrIssueProviderID, err)
	}
	n = Notification{
		ID:              id,
		Title:           msg.Description,
		Description:     msg.Description,
		Bpn:             msg.SenderBpn,
		Side:            ReceiverSide,
		Severity:        msg.Severity,
		TargetDate:      msg.TargetDate,
		AffectedPartIDs: msg.AffectedPartIDs,
		CreatedAt:       time.Now().UTC(),
	}
	if err := n.AddMessage(msg); err != nil {
		return err
	}
	if _, err := svc.repo.Save(ctx, n); err != nil {
		return errors.Wrap(svcerr.ErrCreateEntity, err)
	}

	return nil
}

// publish attempts the hand-off of the given candidate messages and then
// commits the updated aggregate. On hand-off failure the in-memory
// mutation is discarded, the store is never touched.
func (svc *service) publish(ctx context.Context, n Notification, msgs []Message) error {
	for _, msg := range msgs {
		if err := svc.transport.Deliver(ctx, msg); err != nil {
			return errors.Wrap(ErrSendNotification, err)
		}
	}

	if err := ctx.Err(); err != nil {
		return err
	}
	if err := svc.repo.Update(ctx, n); err != nil {
		return errors.Wrap(svcerr.ErrUpdateEntity, err)
	}

	return nil
}

// ownerEndpoints resolves the connector endpoints of the affected parts'
// manufacturers. Owners without a mapping fall back to the receiver's
// endpoint at message build time.
func (svc *service) ownerEndpoints(ctx context.Context, affected []assets.Asset) ([]bpn.EdcMapping, error) {
	seen := make(map[string]struct{}, len(affected))
	owners := make([]string, 0, len(affected))
	for _, asset := range affected {
		if asset.ManufacturerID == "" {
			continue
		}
		if _, ok := seen[asset.ManufacturerID]; ok {
			continue
		}
		seen[asset.ManufacturerID] = struct{}{}
		owners = append(owners, asset.ManufacturerID)
	}
	if len(owners) == 0 {
		return nil, nil
	}

	return svc.partners.ResolveAll(ctx, owners)
}

func (svc *service) loadOrNotFound(ctx context.Context, id string) (Notification, error) {
	n, err := svc.repo.RetrieveByID(ctx, id)
	if err != nil {
		return Notification{}, errors.Wrap(ErrNotFound, errors.Wrap(errors.New(id), err))
	}
	return n, nil
}

func (svc *service) validateReceiver(receiverBpn string) error {
	if receiverBpn == svc.ownBpn {
		return errors.Wrap(ErrSameBpn, fmt.Errorf("bpn %s", receiverBpn))
	}
	return nil
}
