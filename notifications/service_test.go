// Copyright (c) Partlane
// SPDX-License-Identifier: Apache-2.0

package notifications_test

import (
	"context"
	"testing"
	"time"

	"github.com/partlane/qnotify/assets"
	assetMocks "github.com/partlane/qnotify/assets/mocks"
	"github.com/partlane/qnotify/bpn"
	bpnMocks "github.com/partlane/qnotify/bpn/mocks"
	"github.com/partlane/qnotify"
	"github.com/partlane/qnotify/notifications"
	"github.com/partlane/qnotify/notifications/mocks"
	"github.com/partlane/qnotify/pkg/errors"
	repoerr "github.com/partlane/qnotify/pkg/errors/repository"
	svcerr "github.com/partlane/qnotify/pkg/errors/service"
	"github.com/partlane/qnotify/pkg/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
)

const (
	ownBpn      = "BPNL000000000001"
	partnerBpn  = "BPNL000000000002"
	partnerURL  = "https://edc.partner.example/api"
	validID     = "01J7WXYZ5HM4R8Y0QDVJ4N6T2C"
	validPartID = "urn:uuid:part-0001"
)

var (
	errRepo    = errors.New("repository failure")
	errConnect = errors.New("connector unreachable")

	validStart = notifications.StartNotification{
		Title:           "Gearbox casting defect",
		Description:     "Porosity found in casting batch 42",
		AffectedPartIDs: []string{"urn:uuid:part-0001", "urn:uuid:part-0002"},
		ReceiverBpn:     partnerBpn,
		Severity:        notifications.MajorSeverity,
		Type:            notifications.AlertType,
		TargetDate:      time.Date(2026, 10, 1, 0, 0, 0, 0, time.UTC),
	}
	validAssets = []assets.Asset{
		{ID: "urn:uuid:part-0001", Name: "gearbox casing"},
		{ID: "urn:uuid:part-0002", Name: "gearbox shaft"},
	}
	validMapping = bpn.EdcMapping{Bpn: partnerBpn, URL: partnerURL}
)

var (
	repo        *mocks.Repository
	assetRepo   *assetMocks.Repository
	partners    *bpnMocks.Repository
	transport   *mocks.Transport
	msgProvider qnotify.IDProvider
)

// newService also resets the shared message id provider so drafts built
// with draft and ids issued by the service never collide within a test.
func newService() notifications.Service {
	repo = new(mocks.Repository)
	assetRepo = new(assetMocks.Repository)
	partners = new(bpnMocks.Repository)
	transport = new(mocks.Transport)
	idProvider := uuid.NewMock()
	msgProvider = uuid.NewMock()
	return notifications.New(repo, assetRepo, partners, transport, idProvider, msgProvider, ownBpn, notifications.DefaultTransitions())
}

func draft(t *testing.T) notifications.Notification {
	n := notifications.Notification{
		ID:              validID,
		Title:           validStart.Title,
		Description:     validStart.Description,
		Bpn:             partnerBpn,
		Type:            notifications.AlertType,
		Side:            notifications.SenderSide,
		Severity:        notifications.MajorSeverity,
		AffectedPartIDs: validStart.AffectedPartIDs,
		CreatedAt:       time.Now().UTC(),
	}
	msgs, err := notifications.InitialMessages(validAssets, ownBpn, partnerBpn, partnerURL, nil, validStart, msgProvider.ID)
	require.Nil(t, err)
	require.Nil(t, n.AddMessages(msgs))
	return n
}

func TestStart(t *testing.T) {
	svc := newService()

	cases := []struct {
		desc       string
		sn         notifications.StartNotification
		assetsErr  error
		resolveErr error
		saveErr    error
		err        error
	}{
		{
			desc: "start notification successfully",
			sn:   validStart,
			err:  nil,
		},
		{
			desc: "start notification addressed to own bpn",
			sn: notifications.StartNotification{
				Title:           validStart.Title,
				AffectedPartIDs: validStart.AffectedPartIDs,
				ReceiverBpn:     ownBpn,
				Severity:        notifications.MinorSeverity,
				Type:            notifications.InvestigationType,
			},
			err: notifications.ErrSameBpn,
		},
		{
			desc:      "start notification with failed asset lookup",
			sn:        validStart,
			assetsErr: errRepo,
			err:       svcerr.ErrCreateEntity,
		},
		{
			desc:       "start notification with unknown receiver",
			sn:         validStart,
			resolveErr: bpn.ErrNotFound,
			err:        svcerr.ErrCreateEntity,
		},
		{
			desc:    "start notification with failed save",
			sn:      validStart,
			saveErr: errRepo,
			err:     svcerr.ErrCreateEntity,
		},
	}

	for _, tc := range cases {
		t.Run(tc.desc, func(t *testing.T) {
			assetCall := assetRepo.On("RetrieveByIDs", mock.Anything, tc.sn.AffectedPartIDs).Return(validAssets, tc.assetsErr)
			partnerCall := partners.On("Resolve", mock.Anything, tc.sn.ReceiverBpn).Return(validMapping, tc.resolveErr)
			repoCall := repo.On("Save", mock.Anything, mock.Anything).Return(validID, tc.saveErr)
			id, err := svc.Start(context.Background(), tc.sn)
			assert.True(t, errors.Contains(err, tc.err), "%s: expected %s got %s", tc.desc, tc.err, err)
			if err == nil {
				assert.Equal(t, validID, id)
			}
			assetCall.Unset()
			partnerCall.Unset()
			repoCall.Unset()
		})
	}
}

func TestStartDraftsOneMessagePerPart(t *testing.T) {
	svc := newService()

	var saved notifications.Notification
	assetRepo.On("RetrieveByIDs", mock.Anything, mock.Anything).Return(validAssets, nil)
	partners.On("Resolve", mock.Anything, partnerBpn).Return(validMapping, nil)
	repo.On("Save", mock.Anything, mock.Anything).Run(func(args mock.Arguments) {
		saved = args.Get(1).(notifications.Notification)
	}).Return(validID, nil)

	_, err := svc.Start(context.Background(), validStart)
	require.Nil(t, err)

	assert.Equal(t, notifications.SenderSide, saved.Side)
	assert.Equal(t, partnerBpn, saved.Bpn)
	require.Len(t, saved.Messages, len(validAssets))
	seenRefs := map[string]bool{}
	for i, msg := range saved.Messages {
		assert.Equal(t, notifications.CreatedStatus, msg.Status)
		assert.Equal(t, ownBpn, msg.SenderBpn)
		assert.Equal(t, partnerBpn, msg.ReceiverBpn)
		assert.Equal(t, partnerURL, msg.EdcURL)
		assert.Equal(t, []string{validAssets[i].ID}, msg.AffectedPartIDs)
		assert.False(t, seenRefs[msg.EdcNotificationID], "reference ids must be unique")
		seenRefs[msg.EdcNotificationID] = true
	}
	status, err := saved.Status()
	require.Nil(t, err)
	assert.Equal(t, notifications.CreatedStatus, status)
}

func TestStartRoutesThroughPartOwnerEndpoints(t *testing.T) {
	svc := newService()

	ownerBpn := "BPNL000000000003"
	ownerURL := "https://edc.owner.example/api"
	owned := []assets.Asset{
		{ID: "urn:uuid:part-0001", Name: "gearbox casing", ManufacturerID: ownerBpn},
		{ID: "urn:uuid:part-0002", Name: "gearbox shaft", ManufacturerID: "BPNL000000000004"},
	}

	var saved notifications.Notification
	assetRepo.On("RetrieveByIDs", mock.Anything, mock.Anything).Return(owned, nil)
	partners.On("Resolve", mock.Anything, partnerBpn).Return(validMapping, nil)
	partners.On("ResolveAll", mock.Anything, []string{ownerBpn, "BPNL000000000004"}).Return([]bpn.EdcMapping{{Bpn: ownerBpn, URL: ownerURL}}, nil)
	repo.On("Save", mock.Anything, mock.Anything).Run(func(args mock.Arguments) {
		saved = args.Get(1).(notifications.Notification)
	}).Return(validID, nil)

	_, err := svc.Start(context.Background(), validStart)
	require.Nil(t, err)

	require.Len(t, saved.Messages, len(owned))
	assert.Equal(t, ownerURL, saved.Messages[0].EdcURL, "mapped owners route through their own connector")
	assert.Equal(t, partnerURL, saved.Messages[1].EdcURL, "unmapped owners fall back to the receiver's connector")
}

func TestApprove(t *testing.T) {
	svc := newService()

	cases := []struct {
		desc        string
		retrieveErr error
		deliverErr  error
		updateErr   error
		err         error
	}{
		{
			desc: "approve notification successfully",
			err:  nil,
		},
		{
			desc:        "approve missing notification",
			retrieveErr: errRepo,
			err:         notifications.ErrNotFound,
		},
		{
			desc:       "approve notification with failed hand-off",
			deliverErr: errConnect,
			err:        notifications.ErrSendNotification,
		},
		{
			desc:      "approve notification with failed update",
			updateErr: errRepo,
			err:       svcerr.ErrUpdateEntity,
		},
	}

	for _, tc := range cases {
		t.Run(tc.desc, func(t *testing.T) {
			repoCall := repo.On("RetrieveByID", mock.Anything, validID).Return(draft(t), tc.retrieveErr)
			transportCall := transport.On("Deliver", mock.Anything, mock.Anything).Return(tc.deliverErr)
			repoCall1 := repo.On("Update", mock.Anything, mock.Anything).Return(tc.updateErr)
			err := svc.Approve(context.Background(), validID)
			assert.True(t, errors.Contains(err, tc.err), "%s: expected %s got %s", tc.desc, tc.err, err)
			repoCall.Unset()
			transportCall.Unset()
			repoCall1.Unset()
		})
	}
}

func TestApproveAppendsSentCopies(t *testing.T) {
	svc := newService()

	n := draft(t)
	var updated notifications.Notification
	repo.On("RetrieveByID", mock.Anything, validID).Return(n, nil)
	transport.On("Deliver", mock.Anything, mock.Anything).Return(nil)
	repo.On("Update", mock.Anything, mock.Anything).Run(func(args mock.Arguments) {
		updated = args.Get(1).(notifications.Notification)
	}).Return(nil)

	err := svc.Approve(context.Background(), validID)
	require.Nil(t, err)

	require.Len(t, updated.Messages, 2*len(n.Messages), "history must grow, never mutate")
	created := updated.MessagesInStatus(notifications.CreatedStatus)
	sent := updated.MessagesInStatus(notifications.SentStatus)
	assert.Len(t, created, len(n.Messages))
	assert.Len(t, sent, len(n.Messages))
	for i, msg := range sent {
		assert.NotEqual(t, created[i].ID, msg.ID, "approved copies carry fresh ids")
		assert.Equal(t, created[i].EdcNotificationID, msg.EdcNotificationID, "reference id stays with the conversation")
		assert.Equal(t, ownBpn, msg.SenderBpn)
		assert.Equal(t, partnerBpn, msg.ReceiverBpn)
	}
	transport.AssertNumberOfCalls(t, "Deliver", len(n.Messages))
}

func TestApproveFailedHandOffLeavesStoreUntouched(t *testing.T) {
	svc := newService()

	repo.On("RetrieveByID", mock.Anything, validID).Return(draft(t), nil)
	transport.On("Deliver", mock.Anything, mock.Anything).Return(errConnect)

	err := svc.Approve(context.Background(), validID)
	assert.True(t, errors.Contains(err, notifications.ErrSendNotification))
	repo.AssertNotCalled(t, "Update", mock.Anything, mock.Anything)
}

func TestCancel(t *testing.T) {
	svc := newService()

	n := draft(t)
	var updated notifications.Notification
	repo.On("RetrieveByID", mock.Anything, validID).Return(n, nil)
	transport.On("Deliver", mock.Anything, mock.Anything).Return(nil)
	repo.On("Update", mock.Anything, mock.Anything).Run(func(args mock.Arguments) {
		updated = args.Get(1).(notifications.Notification)
	}).Return(nil)

	err := svc.Cancel(context.Background(), validID)
	require.Nil(t, err)

	status, err := updated.Status()
	require.Nil(t, err)
	assert.Equal(t, notifications.CanceledStatus, status)
	canceled := updated.MessagesInStatus(notifications.CanceledStatus)
	assert.NotEmpty(t, canceled)
	for _, msg := range canceled {
		assert.Equal(t, ownBpn, msg.SenderBpn, "cancel keeps the original direction")
	}
}

func TestUpdateStatusTransition(t *testing.T) {
	svc := newService()

	received := draft(t)
	reply := received.Messages[0].SwitchSenderAndReceiver()
	reply.ID = "incoming-message"
	reply.Status = notifications.ReceivedStatus
	require.Nil(t, received.AddMessage(reply))

	cases := []struct {
		desc   string
		n      notifications.Notification
		status notifications.Status
		reason string
		err    error
	}{
		{
			desc:   "acknowledge received notification",
			n:      received,
			status: notifications.AcknowledgedStatus,
			reason: "investigating the batch",
			err:    nil,
		},
		{
			desc:   "accept without acknowledgement",
			n:      received,
			status: notifications.AcceptedStatus,
			reason: "accepted",
			err:    notifications.ErrInvalidTransition,
		},
		{
			desc:   "advance to status without predecessors",
			n:      received,
			status: notifications.CreatedStatus,
			reason: "rewind",
			err:    notifications.ErrInvalidTransition,
		},
	}

	for _, tc := range cases {
		t.Run(tc.desc, func(t *testing.T) {
			var updated notifications.Notification
			repoCall := repo.On("RetrieveByID", mock.Anything, validID).Return(tc.n, nil)
			transportCall := transport.On("Deliver", mock.Anything, mock.Anything).Return(nil)
			repoCall1 := repo.On("Update", mock.Anything, mock.Anything).Run(func(args mock.Arguments) {
				updated = args.Get(1).(notifications.Notification)
			}).Return(nil)
			err := svc.UpdateStatusTransition(context.Background(), validID, tc.status, tc.reason)
			assert.True(t, errors.Contains(err, tc.err), "%s: expected %s got %s", tc.desc, tc.err, err)
			if err == nil {
				advanced := updated.MessagesInStatus(tc.status)
				require.NotEmpty(t, advanced)
				for _, msg := range advanced {
					assert.Equal(t, reply.ReceiverBpn, msg.SenderBpn, "reply swaps the direction")
					assert.Equal(t, reply.SenderBpn, msg.ReceiverBpn)
					assert.Equal(t, tc.reason, msg.Description)
					assert.NotEqual(t, reply.ID, msg.ID)
				}
			}
			repoCall.Unset()
			transportCall.Unset()
			repoCall1.Unset()
		})
	}
}

func TestEdit(t *testing.T) {
	svc := newService()

	newTitle := "Gearbox casting defect, revised"
	newDescription := "Porosity confirmed on second inspection"
	newSeverity := notifications.CriticalSeverity
	ownReceiver := ownBpn

	cases := []struct {
		desc        string
		en          notifications.EditNotification
		retrieveErr error
		deleteErr   error
		updateErr   error
		err         error
	}{
		{
			desc: "edit notification successfully",
			en: notifications.EditNotification{
				ID:          validID,
				Title:       newTitle,
				Description: &newDescription,
				Severity:    &newSeverity,
			},
			err: nil,
		},
		{
			desc: "edit notification redirected to own bpn",
			en: notifications.EditNotification{
				ID:          validID,
				Title:       newTitle,
				ReceiverBpn: &ownReceiver,
			},
			err: notifications.ErrSameBpn,
		},
		{
			desc: "edit missing notification",
			en: notifications.EditNotification{
				ID:    validID,
				Title: newTitle,
			},
			retrieveErr: errRepo,
			err:         notifications.ErrNotFound,
		},
		{
			desc: "edit notification with failed message delete",
			en: notifications.EditNotification{
				ID:    validID,
				Title: newTitle,
			},
			deleteErr: errRepo,
			err:       svcerr.ErrRemoveEntity,
		},
		{
			desc: "edit notification with failed update",
			en: notifications.EditNotification{
				ID:    validID,
				Title: newTitle,
			},
			updateErr: errRepo,
			err:       svcerr.ErrUpdateEntity,
		},
	}

	for _, tc := range cases {
		t.Run(tc.desc, func(t *testing.T) {
			n := draft(t)
			oldIDs := n.MessageIDs()
			var updated notifications.Notification
			repoCall := repo.On("RetrieveByID", mock.Anything, validID).Return(n, tc.retrieveErr)
			assetCall := assetRepo.On("RetrieveByIDs", mock.Anything, mock.Anything).Return(validAssets, nil)
			partnerCall := partners.On("Resolve", mock.Anything, mock.Anything).Return(validMapping, nil)
			repoCall1 := repo.On("DeleteMessages", mock.Anything, oldIDs).Return(tc.deleteErr)
			repoCall2 := repo.On("Update", mock.Anything, mock.Anything).Run(func(args mock.Arguments) {
				updated = args.Get(1).(notifications.Notification)
			}).Return(tc.updateErr)
			err := svc.Edit(context.Background(), tc.en)
			assert.True(t, errors.Contains(err, tc.err), "%s: expected %s got %s", tc.desc, tc.err, err)
			if err == nil {
				assert.Equal(t, tc.en.Title, updated.Title)
				if tc.en.Description != nil {
					assert.Equal(t, *tc.en.Description, updated.Description)
				}
				if tc.en.Severity != nil {
					assert.Equal(t, *tc.en.Severity, updated.Severity)
				}
				require.Len(t, updated.Messages, len(oldIDs), "history is rebuilt, not appended")
				for _, msg := range updated.Messages {
					assert.Equal(t, notifications.CreatedStatus, msg.Status)
					assert.NotContains(t, oldIDs, msg.ID, "re-drafted messages carry fresh ids")
				}
			}
			repoCall.Unset()
			assetCall.Unset()
			partnerCall.Unset()
			repoCall1.Unset()
			repoCall2.Unset()
		})
	}
}

func TestFind(t *testing.T) {
	svc := newService()

	cases := []struct {
		desc        string
		retrieveErr error
		err         error
	}{
		{
			desc: "find notification successfully",
			err:  nil,
		},
		{
			desc:        "find missing notification",
			retrieveErr: errRepo,
			err:         notifications.ErrNotFound,
		},
	}

	for _, tc := range cases {
		t.Run(tc.desc, func(t *testing.T) {
			repoCall := repo.On("RetrieveByID", mock.Anything, validID).Return(draft(t), tc.retrieveErr)
			_, err := svc.Find(context.Background(), validID)
			assert.True(t, errors.Contains(err, tc.err), "%s: expected %s got %s", tc.desc, tc.err, err)
			repoCall.Unset()
		})
	}
}

func TestDistinctFilterValues(t *testing.T) {
	svc := newService()

	cases := []struct {
		desc     string
		field    string
		repoRes  []string
		repoErr  error
		expected []string
		repoHit  bool
		err      error
	}{
		{
			desc:     "status values come from the enumeration",
			field:    "status",
			expected: notifications.StatusValues(),
		},
		{
			desc:     "side values come from the enumeration",
			field:    "side",
			expected: notifications.SideValues(),
		},
		{
			desc:     "severity values come from the enumeration",
			field:    "messages_severity",
			expected: notifications.SeverityValues(),
		},
		{
			desc:     "type values come from the enumeration",
			field:    "type",
			expected: notifications.TypeValues(),
		},
		{
			desc:     "free-text field values come from the store",
			field:    "bpn",
			repoRes:  []string{partnerBpn},
			expected: []string{partnerBpn},
			repoHit:  true,
		},
		{
			desc:    "free-text field with failed query",
			field:   "title",
			repoErr: errRepo,
			repoHit: true,
			err:     svcerr.ErrViewEntity,
		},
	}

	for _, tc := range cases {
		t.Run(tc.desc, func(t *testing.T) {
			repoCall := repo.On("DistinctFieldValues", mock.Anything, tc.field, "BPN", int64(10), notifications.SenderSide).Return(tc.repoRes, tc.repoErr)
			values, err := svc.DistinctFilterValues(context.Background(), tc.field, "BPN", 10, notifications.SenderSide)
			assert.True(t, errors.Contains(err, tc.err), "%s: expected %s got %s", tc.desc, tc.err, err)
			if err == nil {
				assert.Equal(t, tc.expected, values)
			}
			if !tc.repoHit {
				repo.AssertNotCalled(t, "DistinctFieldValues", mock.Anything, tc.field, "BPN", int64(10), notifications.SenderSide)
			}
			repoCall.Unset()
		})
	}
}

func TestHandleReceive(t *testing.T) {
	svc := newService()

	incoming := notifications.Message{
		ID:                "remote-message-id",
		SenderBpn:         partnerBpn,
		ReceiverBpn:       ownBpn,
		Description:       "Porosity found in casting batch 42",
		Status:            notifications.ReceivedStatus,
		Severity:          notifications.MajorSeverity,
		AffectedPartIDs:   []string{validPartID},
		EdcNotificationID: "edc-ref-0001",
		CreatedAt:         time.Now().UTC(),
	}

	t.Run("receive first message opens aggregate", func(t *testing.T) {
		var saved notifications.Notification
		repoCall := repo.On("RetrieveByEdcNotificationID", mock.Anything, incoming.EdcNotificationID).Return(notifications.Notification{}, repoerr.ErrNotFound)
		repoCall1 := repo.On("Save", mock.Anything, mock.Anything).Run(func(args mock.Arguments) {
			saved = args.Get(1).(notifications.Notification)
		}).Return(validID, nil)
		err := svc.HandleReceive(context.Background(), incoming)
		require.Nil(t, err)
		assert.Equal(t, notifications.ReceiverSide, saved.Side)
		assert.Equal(t, partnerBpn, saved.Bpn)
		require.Len(t, saved.Messages, 1)
		repoCall.Unset()
		repoCall1.Unset()
	})

	t.Run("receive follow-up message appends", func(t *testing.T) {
		existing := draft(t)
		var updated notifications.Notification
		repoCall := repo.On("RetrieveByEdcNotificationID", mock.Anything, incoming.EdcNotificationID).Return(existing, nil)
		repoCall1 := repo.On("Update", mock.Anything, mock.Anything).Run(func(args mock.Arguments) {
			updated = args.Get(1).(notifications.Notification)
		}).Return(nil)
		err := svc.HandleReceive(context.Background(), incoming)
		require.Nil(t, err)
		assert.Len(t, updated.Messages, len(existing.Messages)+1)
		repoCall.Unset()
		repoCall1.Unset()
	})

	t.Run("receive with failing reference lookup", func(t *testing.T) {
		svc := newService()
		repo.On("RetrieveByEdcNotificationID", mock.Anything, incoming.EdcNotificationID).Return(notifications.Notification{}, errRepo)
		err := svc.HandleReceive(context.Background(), incoming)
		assert.True(t, errors.Contains(err, svcerr.ErrViewEntity), "a store failure must not open a new aggregate")
		repo.AssertNotCalled(t, "Save", mock.Anything, mock.Anything)
	})

	t.Run("receive message with matching sender and receiver", func(t *testing.T) {
		bad := incoming
		bad.ReceiverBpn = bad.SenderBpn
		err := svc.HandleReceive(context.Background(), bad)
		assert.True(t, errors.Contains(err, notifications.ErrSameBpn))
	})
}

// inmemRepo is a minimal store used to walk a notification through a full
// sender-side exchange.
type inmemRepo struct {
	byID map[string]notifications.Notification
}

func (r *inmemRepo) Save(_ context.Context, n notifications.Notification) (string, error) {
	r.byID[n.ID] = n
	return n.ID, nil
}

func (r *inmemRepo) RetrieveByID(_ context.Context, id string) (notifications.Notification, error) {
	n, ok := r.byID[id]
	if !ok {
		return notifications.Notification{}, repoerr.ErrNotFound
	}
	return n, nil
}

func (r *inmemRepo) RetrieveByEdcNotificationID(_ context.Context, edcID string) (notifications.Notification, error) {
	for _, n := range r.byID {
		for _, msg := range n.Messages {
			if msg.EdcNotificationID == edcID {
				return n, nil
			}
		}
	}
	return notifications.Notification{}, repoerr.ErrNotFound
}

func (r *inmemRepo) RetrieveAll(_ context.Context, _ notifications.PageMetadata) (notifications.Page, error) {
	page := notifications.Page{Total: uint64(len(r.byID))}
	for _, n := range r.byID {
		page.Notifications = append(page.Notifications, n)
	}
	return page, nil
}

func (r *inmemRepo) Update(_ context.Context, n notifications.Notification) error {
	r.byID[n.ID] = n
	return nil
}

func (r *inmemRepo) DeleteMessages(_ context.Context, _ []string) error {
	return nil
}

func (r *inmemRepo) DistinctFieldValues(_ context.Context, _, _ string, _ int64, _ notifications.Side) ([]string, error) {
	return nil, nil
}

func TestSenderSideExchange(t *testing.T) {
	store := &inmemRepo{byID: map[string]notifications.Notification{}}
	assetRepo := new(assetMocks.Repository)
	partners := new(bpnMocks.Repository)
	transport := new(mocks.Transport)
	svc := notifications.New(store, assetRepo, partners, transport, uuid.NewMock(), uuid.New(), ownBpn, notifications.DefaultTransitions())

	assetRepo.On("RetrieveByIDs", mock.Anything, mock.Anything).Return(validAssets, nil)
	partners.On("Resolve", mock.Anything, partnerBpn).Return(validMapping, nil)
	transport.On("Deliver", mock.Anything, mock.Anything).Return(nil)

	ctx := context.Background()

	id, err := svc.Start(ctx, validStart)
	require.Nil(t, err)
	n, err := svc.Find(ctx, id)
	require.Nil(t, err)
	require.Len(t, n.Messages, 2)
	status, err := n.Status()
	require.Nil(t, err)
	assert.Equal(t, notifications.CreatedStatus, status)

	require.Nil(t, svc.Approve(ctx, id))
	n, err = svc.Find(ctx, id)
	require.Nil(t, err)
	require.Len(t, n.Messages, 4)
	status, err = n.Status()
	require.Nil(t, err)
	assert.Equal(t, notifications.SentStatus, status)

	require.Nil(t, svc.UpdateStatusTransition(ctx, id, notifications.ReceivedStatus, "received by partner"))
	n, err = svc.Find(ctx, id)
	require.Nil(t, err)
	require.Len(t, n.Messages, 6)
	status, err = n.Status()
	require.Nil(t, err)
	assert.Equal(t, notifications.ReceivedStatus, status)
	for _, msg := range n.MessagesInStatus(notifications.ReceivedStatus) {
		assert.Equal(t, partnerBpn, msg.SenderBpn)
		assert.Equal(t, ownBpn, msg.ReceiverBpn)
	}
}
