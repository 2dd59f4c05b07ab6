// Copyright (c) Partlane
// SPDX-License-Identifier: Apache-2.0

package postgres

import (
	"context"
	"database/sql"
	"fmt"
	"strings"
	"time"

	"github.com/lib/pq"
	"github.com/partlane/qnotify/notifications"
	"github.com/partlane/qnotify/pkg/errors"
	repoerr "github.com/partlane/qnotify/pkg/errors/repository"
	"github.com/partlane/qnotify/pkg/postgres"
)

var _ notifications.Repository = (*notificationRepo)(nil)

// Free-text fields exposed to distinct-value queries, keyed by their
// query name. Anything else is rejected before reaching the database.
var distinctColumns = map[string]string{
	"bpn":         "n.bpn",
	"title":       "n.title",
	"description": "n.description",
	"send_to":     "m.receiver_bpn",
	"created_by":  "m.sender_bpn",
}

type notificationRepo struct {
	db postgres.Database
}

// NewRepository instantiates a PostgreSQL
// implementation of the notification repository.
func NewRepository(db postgres.Database) notifications.Repository {
	return &notificationRepo{
		db: db,
	}
}

func (repo *notificationRepo) Save(ctx context.Context, n notifications.Notification) (string, error) {
	dbn, err := toDBNotification(n)
	if err != nil {
		return "", errors.Wrap(repoerr.ErrCreateEntity, err)
	}

	tx, err := repo.db.BeginTxx(ctx, nil)
	if err != nil {
		return "", errors.Wrap(repoerr.ErrCreateEntity, err)
	}
	defer func() {
		if err != nil {
			_ = tx.Rollback()
		}
	}()

	q := `INSERT INTO notifications (id, title, description, bpn, type, side, severity, status, target_date, affected_part_ids, created_at, updated_at)
	VALUES (:id, :title, :description, :bpn, :type, :side, :severity, :status, :target_date, :affected_part_ids, :created_at, :updated_at);`
	if _, err = tx.NamedExecContext(ctx, q, dbn); err != nil {
		return "", postgres.HandleError(repoerr.ErrCreateEntity, err)
	}

	if err = insertMessages(ctx, tx, n.ID, n.Messages); err != nil {
		return "", err
	}

	if err = tx.Commit(); err != nil {
		return "", errors.Wrap(repoerr.ErrCreateEntity, err)
	}

	return n.ID, nil
}

func (repo *notificationRepo) RetrieveByID(ctx context.Context, id string) (notifications.Notification, error) {
	q := `SELECT id, title, description, bpn, type, side, severity, target_date, affected_part_ids, created_at, updated_at
	FROM notifications WHERE id = :id;`

	rows, err := repo.db.NamedQueryContext(ctx, q, map[string]any{"id": id})
	if err != nil {
		return notifications.Notification{}, postgres.HandleError(repoerr.ErrViewEntity, err)
	}
	defer rows.Close()

	if !rows.Next() {
		return notifications.Notification{}, repoerr.ErrNotFound
	}

	var dbn dbNotification
	if err := rows.StructScan(&dbn); err != nil {
		return notifications.Notification{}, errors.Wrap(repoerr.ErrFailedOpDB, err)
	}

	n, err := toNotification(dbn)
	if err != nil {
		return notifications.Notification{}, errors.Wrap(repoerr.ErrFailedOpDB, err)
	}

	msgs, err := repo.retrieveMessages(ctx, n.ID)
	if err != nil {
		return notifications.Notification{}, err
	}
	n.Messages = msgs

	return n, nil
}

func (repo *notificationRepo) RetrieveByEdcNotificationID(ctx context.Context, edcNotificationID string) (notifications.Notification, error) {
	q := `SELECT DISTINCT notification_id FROM notification_messages WHERE edc_notification_id = :edc_notification_id;`

	rows, err := repo.db.NamedQueryContext(ctx, q, map[string]any{"edc_notification_id": edcNotificationID})
	if err != nil {
		return notifications.Notification{}, postgres.HandleError(repoerr.ErrViewEntity, err)
	}
	defer rows.Close()

	if !rows.Next() {
		return notifications.Notification{}, repoerr.ErrNotFound
	}

	var id string
	if err := rows.Scan(&id); err != nil {
		return notifications.Notification{}, errors.Wrap(repoerr.ErrFailedOpDB, err)
	}
	rows.Close()

	return repo.RetrieveByID(ctx, id)
}

func (repo *notificationRepo) RetrieveAll(ctx context.Context, pm notifications.PageMetadata) (notifications.Page, error) {
	query := buildPageQuery(pm)

	q := fmt.Sprintf(`SELECT id, title, description, bpn, type, side, severity, target_date, affected_part_ids, created_at, updated_at
	FROM notifications n %s ORDER BY created_at DESC LIMIT :limit OFFSET :offset;`, query)

	dbpm := toDBPageMetadata(pm)
	rows, err := repo.db.NamedQueryContext(ctx, q, dbpm)
	if err != nil {
		return notifications.Page{}, postgres.HandleError(repoerr.ErrViewEntity, err)
	}
	defer rows.Close()

	var items []notifications.Notification
	for rows.Next() {
		var dbn dbNotification
		if err := rows.StructScan(&dbn); err != nil {
			return notifications.Page{}, errors.Wrap(repoerr.ErrFailedOpDB, err)
		}
		n, err := toNotification(dbn)
		if err != nil {
			return notifications.Page{}, errors.Wrap(repoerr.ErrFailedOpDB, err)
		}
		msgs, err := repo.retrieveMessages(ctx, n.ID)
		if err != nil {
			return notifications.Page{}, err
		}
		n.Messages = msgs
		items = append(items, n)
	}

	cq := fmt.Sprintf(`SELECT COUNT(*) FROM notifications n %s;`, query)
	total, err := postgres.Total(ctx, repo.db, cq, dbpm)
	if err != nil {
		return notifications.Page{}, errors.Wrap(repoerr.ErrViewEntity, err)
	}

	return notifications.Page{
		PageMetadata:  pm,
		Total:         total,
		Notifications: items,
	}, nil
}

func (repo *notificationRepo) Update(ctx context.Context, n notifications.Notification) error {
	dbn, err := toDBNotification(n)
	if err != nil {
		return errors.Wrap(repoerr.ErrUpdateEntity, err)
	}

	tx, err := repo.db.BeginTxx(ctx, nil)
	if err != nil {
		return errors.Wrap(repoerr.ErrUpdateEntity, err)
	}
	defer func() {
		if err != nil {
			_ = tx.Rollback()
		}
	}()

	q := `UPDATE notifications SET title = :title, description = :description, bpn = :bpn, severity = :severity,
	status = :status, target_date = :target_date, affected_part_ids = :affected_part_ids, updated_at = :updated_at
	WHERE id = :id;`
	res, err := tx.NamedExecContext(ctx, q, dbn)
	if err != nil {
		return postgres.HandleError(repoerr.ErrUpdateEntity, err)
	}
	count, err := res.RowsAffected()
	if err != nil {
		return errors.Wrap(repoerr.ErrFailedOpDB, err)
	}
	if count == 0 {
		err = repoerr.ErrNotFound
		return err
	}

	if err = insertMessages(ctx, tx, n.ID, n.Messages); err != nil {
		return err
	}

	if err = tx.Commit(); err != nil {
		return errors.Wrap(repoerr.ErrUpdateEntity, err)
	}

	return nil
}

func (repo *notificationRepo) DeleteMessages(ctx context.Context, ids []string) error {
	if len(ids) == 0 {
		return nil
	}

	q := `DELETE FROM notification_messages WHERE id = ANY(:ids);`
	if _, err := repo.db.NamedExecContext(ctx, q, map[string]any{"ids": pq.Array(ids)}); err != nil {
		return postgres.HandleError(repoerr.ErrRemoveEntity, err)
	}

	return nil
}

func (repo *notificationRepo) DistinctFieldValues(ctx context.Context, field, startsWith string, limit int64, side notifications.Side) ([]string, error) {
	column, ok := distinctColumns[field]
	if !ok {
		return nil, errors.Wrap(repoerr.ErrMalformedEntity, fmt.Errorf("unsupported filter field %q", field))
	}

	var conditions []string
	params := map[string]any{
		"starts_with": startsWith,
		"side":        side,
	}
	if startsWith != "" {
		conditions = append(conditions, fmt.Sprintf("%s ILIKE :starts_with || '%%'", column))
	}
	if side != notifications.AllSides {
		conditions = append(conditions, "n.side = :side")
	}

	from := "notifications n"
	if strings.HasPrefix(column, "m.") {
		from = "notifications n JOIN notification_messages m ON m.notification_id = n.id"
	}

	var where string
	if len(conditions) > 0 {
		where = fmt.Sprintf("WHERE %s", strings.Join(conditions, " AND "))
	}
	q := fmt.Sprintf(`SELECT DISTINCT %s FROM %s %s ORDER BY %s;`, column, from, where, column)
	if limit > 0 {
		q = fmt.Sprintf(`SELECT DISTINCT %s FROM %s %s ORDER BY %s LIMIT %d;`, column, from, where, column, limit)
	}

	rows, err := repo.db.NamedQueryContext(ctx, q, params)
	if err != nil {
		return nil, postgres.HandleError(repoerr.ErrViewEntity, err)
	}
	defer rows.Close()

	var values []string
	for rows.Next() {
		var value sql.NullString
		if err := rows.Scan(&value); err != nil {
			return nil, errors.Wrap(repoerr.ErrFailedOpDB, err)
		}
		if value.Valid {
			values = append(values, value.String)
		}
	}

	return values, nil
}

func (repo *notificationRepo) retrieveMessages(ctx context.Context, notificationID string) ([]notifications.Message, error) {
	q := `SELECT id, sender_bpn, receiver_bpn, description, status, severity, affected_part_ids, edc_notification_id, contract_agreement_id, edc_url, target_date, created_at
	FROM notification_messages WHERE notification_id = :notification_id ORDER BY seq ASC;`

	rows, err := repo.db.NamedQueryContext(ctx, q, map[string]any{"notification_id": notificationID})
	if err != nil {
		return nil, postgres.HandleError(repoerr.ErrViewEntity, err)
	}
	defer rows.Close()

	var msgs []notifications.Message
	for rows.Next() {
		var dbm dbMessage
		if err := rows.StructScan(&dbm); err != nil {
			return nil, errors.Wrap(repoerr.ErrFailedOpDB, err)
		}
		msgs = append(msgs, toMessage(dbm))
	}

	return msgs, nil
}

type txExecer interface {
	NamedExecContext(ctx context.Context, query string, arg any) (sql.Result, error)
}

// Messages are append-only. Rows already present are left untouched so
// that replaying an aggregate never rewrites history.
func insertMessages(ctx context.Context, tx txExecer, notificationID string, msgs []notifications.Message) error {
	q := `INSERT INTO notification_messages (id, notification_id, sender_bpn, receiver_bpn, description, status, severity, affected_part_ids, edc_notification_id, contract_agreement_id, edc_url, target_date, created_at)
	VALUES (:id, :notification_id, :sender_bpn, :receiver_bpn, :description, :status, :severity, :affected_part_ids, :edc_notification_id, :contract_agreement_id, :edc_url, :target_date, :created_at)
	ON CONFLICT (id) DO NOTHING;`

	for _, msg := range msgs {
		dbm := toDBMessage(notificationID, msg)
		if _, err := tx.NamedExecContext(ctx, q, dbm); err != nil {
			return postgres.HandleError(repoerr.ErrCreateEntity, err)
		}
	}

	return nil
}

func buildPageQuery(pm notifications.PageMetadata) string {
	var query []string

	if pm.Status != notifications.AllStatus {
		query = append(query, "n.status = :status")
	}
	if pm.Side != notifications.AllSides {
		query = append(query, "n.side = :side")
	}
	if pm.Severity != notifications.AllSeverities {
		query = append(query, "n.severity = :severity")
	}
	if pm.Type != notifications.AllTypes {
		query = append(query, "n.type = :type")
	}
	if pm.Bpn != "" {
		query = append(query, "n.bpn = :bpn")
	}

	if len(query) > 0 {
		return fmt.Sprintf("WHERE %s", strings.Join(query, " AND "))
	}

	return ""
}

type dbNotification struct {
	ID              string         `db:"id"`
	Title           string         `db:"title"`
	Description     string         `db:"description"`
	Bpn             string         `db:"bpn"`
	Type            uint8          `db:"type"`
	Side            uint8          `db:"side"`
	Severity        uint8          `db:"severity"`
	Status          uint8          `db:"status"`
	TargetDate      sql.NullTime   `db:"target_date"`
	AffectedPartIDs pq.StringArray `db:"affected_part_ids"`
	CreatedAt       time.Time      `db:"created_at"`
	UpdatedAt       sql.NullTime   `db:"updated_at"`
}

type dbMessage struct {
	ID                  string         `db:"id"`
	NotificationID      string         `db:"notification_id"`
	SenderBpn           string         `db:"sender_bpn"`
	ReceiverBpn         string         `db:"receiver_bpn"`
	Description         string         `db:"description"`
	Status              uint8          `db:"status"`
	Severity            uint8          `db:"severity"`
	AffectedPartIDs     pq.StringArray `db:"affected_part_ids"`
	EdcNotificationID   string         `db:"edc_notification_id"`
	ContractAgreementID sql.NullString `db:"contract_agreement_id"`
	EdcURL              sql.NullString `db:"edc_url"`
	TargetDate          sql.NullTime   `db:"target_date"`
	CreatedAt           time.Time      `db:"created_at"`
}

type dbPageMetadata struct {
	Offset   uint64 `db:"offset"`
	Limit    uint64 `db:"limit"`
	Status   uint8  `db:"status"`
	Side     uint8  `db:"side"`
	Severity uint8  `db:"severity"`
	Type     uint8  `db:"type"`
	Bpn      string `db:"bpn"`
}

func toDBNotification(n notifications.Notification) (dbNotification, error) {
	status, err := n.Status()
	if err != nil {
		return dbNotification{}, err
	}

	var updatedAt sql.NullTime
	if !n.UpdatedAt.IsZero() {
		updatedAt = sql.NullTime{Time: n.UpdatedAt, Valid: true}
	}
	var targetDate sql.NullTime
	if !n.TargetDate.IsZero() {
		targetDate = sql.NullTime{Time: n.TargetDate, Valid: true}
	}

	return dbNotification{
		ID:              n.ID,
		Title:           n.Title,
		Description:     n.Description,
		Bpn:             n.Bpn,
		Type:            uint8(n.Type),
		Side:            uint8(n.Side),
		Severity:        uint8(n.Severity),
		Status:          uint8(status),
		TargetDate:      targetDate,
		AffectedPartIDs: pq.StringArray(n.AffectedPartIDs),
		CreatedAt:       n.CreatedAt,
		UpdatedAt:       updatedAt,
	}, nil
}

func toNotification(dbn dbNotification) (notifications.Notification, error) {
	n := notifications.Notification{
		ID:              dbn.ID,
		Title:           dbn.Title,
		Description:     dbn.Description,
		Bpn:             dbn.Bpn,
		Type:            notifications.Type(dbn.Type),
		Side:            notifications.Side(dbn.Side),
		Severity:        notifications.Severity(dbn.Severity),
		AffectedPartIDs: []string(dbn.AffectedPartIDs),
		CreatedAt:       dbn.CreatedAt,
	}
	if dbn.TargetDate.Valid {
		n.TargetDate = dbn.TargetDate.Time
	}
	if dbn.UpdatedAt.Valid {
		n.UpdatedAt = dbn.UpdatedAt.Time
	}

	return n, nil
}

func toDBMessage(notificationID string, msg notifications.Message) dbMessage {
	var contractAgreementID sql.NullString
	if msg.ContractAgreementID != "" {
		contractAgreementID = sql.NullString{String: msg.ContractAgreementID, Valid: true}
	}
	var edcURL sql.NullString
	if msg.EdcURL != "" {
		edcURL = sql.NullString{String: msg.EdcURL, Valid: true}
	}
	var targetDate sql.NullTime
	if !msg.TargetDate.IsZero() {
		targetDate = sql.NullTime{Time: msg.TargetDate, Valid: true}
	}

	return dbMessage{
		ID:                  msg.ID,
		NotificationID:      notificationID,
		SenderBpn:           msg.SenderBpn,
		ReceiverBpn:         msg.ReceiverBpn,
		Description:         msg.Description,
		Status:              uint8(msg.Status),
		Severity:            uint8(msg.Severity),
		AffectedPartIDs:     pq.StringArray(msg.AffectedPartIDs),
		EdcNotificationID:   msg.EdcNotificationID,
		ContractAgreementID: contractAgreementID,
		EdcURL:              edcURL,
		TargetDate:          targetDate,
		CreatedAt:           msg.CreatedAt,
	}
}

func toMessage(dbm dbMessage) notifications.Message {
	msg := notifications.Message{
		ID:                dbm.ID,
		SenderBpn:         dbm.SenderBpn,
		ReceiverBpn:       dbm.ReceiverBpn,
		Description:       dbm.Description,
		Status:            notifications.Status(dbm.Status),
		Severity:          notifications.Severity(dbm.Severity),
		AffectedPartIDs:   []string(dbm.AffectedPartIDs),
		EdcNotificationID: dbm.EdcNotificationID,
		CreatedAt:         dbm.CreatedAt,
	}
	if dbm.ContractAgreementID.Valid {
		msg.ContractAgreementID = dbm.ContractAgreementID.String
	}
	if dbm.EdcURL.Valid {
		msg.EdcURL = dbm.EdcURL.String
	}
	if dbm.TargetDate.Valid {
		msg.TargetDate = dbm.TargetDate.Time
	}

	return msg
}

func toDBPageMetadata(pm notifications.PageMetadata) dbPageMetadata {
	return dbPageMetadata{
		Offset:   pm.Offset,
		Limit:    pm.Limit,
		Status:   uint8(pm.Status),
		Side:     uint8(pm.Side),
		Severity: uint8(pm.Severity),
		Type:     uint8(pm.Type),
		Bpn:      pm.Bpn,
	}
}
