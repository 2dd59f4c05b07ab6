// Copyright (c) Partlane
// SPDX-License-Identifier: Apache-2.0

package http

import (
	"fmt"
	"net/http"

	"github.com/partlane/qnotify"
	"github.com/partlane/qnotify/notifications"
)

var (
	_ qnotify.Response = (*startNotificationRes)(nil)
	_ qnotify.Response = (*viewNotificationRes)(nil)
	_ qnotify.Response = (*listNotificationsRes)(nil)
	_ qnotify.Response = (*approveNotificationRes)(nil)
	_ qnotify.Response = (*cancelNotificationRes)(nil)
	_ qnotify.Response = (*updateStatusRes)(nil)
	_ qnotify.Response = (*editNotificationRes)(nil)
	_ qnotify.Response = (*distinctFilterValuesRes)(nil)
	_ qnotify.Response = (*receiveMessageRes)(nil)
)

type startNotificationRes struct {
	ID string `json:"id"`
}

func (res startNotificationRes) Code() int {
	return http.StatusCreated
}

func (res startNotificationRes) Headers() map[string]string {
	return map[string]string{
		"Location": fmt.Sprintf("/notifications/%s", res.ID),
	}
}

func (res startNotificationRes) Empty() bool {
	return false
}

type viewNotificationRes struct {
	notifications.Notification
}

func (res viewNotificationRes) Code() int {
	return http.StatusOK
}

func (res viewNotificationRes) Headers() map[string]string {
	return map[string]string{}
}

func (res viewNotificationRes) Empty() bool {
	return false
}

type listNotificationsRes struct {
	notifications.Page
}

func (res listNotificationsRes) Code() int {
	return http.StatusOK
}

func (res listNotificationsRes) Headers() map[string]string {
	return map[string]string{}
}

func (res listNotificationsRes) Empty() bool {
	return false
}

type approveNotificationRes struct{}

func (res approveNotificationRes) Code() int {
	return http.StatusNoContent
}

func (res approveNotificationRes) Headers() map[string]string {
	return map[string]string{}
}

func (res approveNotificationRes) Empty() bool {
	return true
}

type cancelNotificationRes struct{}

func (res cancelNotificationRes) Code() int {
	return http.StatusNoContent
}

func (res cancelNotificationRes) Headers() map[string]string {
	return map[string]string{}
}

func (res cancelNotificationRes) Empty() bool {
	return true
}

type updateStatusRes struct{}

func (res updateStatusRes) Code() int {
	return http.StatusNoContent
}

func (res updateStatusRes) Headers() map[string]string {
	return map[string]string{}
}

func (res updateStatusRes) Empty() bool {
	return true
}

type editNotificationRes struct{}

func (res editNotificationRes) Code() int {
	return http.StatusNoContent
}

func (res editNotificationRes) Headers() map[string]string {
	return map[string]string{}
}

func (res editNotificationRes) Empty() bool {
	return true
}

type distinctFilterValuesRes struct {
	Values []string `json:"values"`
}

func (res distinctFilterValuesRes) Code() int {
	return http.StatusOK
}

func (res distinctFilterValuesRes) Headers() map[string]string {
	return map[string]string{}
}

func (res distinctFilterValuesRes) Empty() bool {
	return false
}

type receiveMessageRes struct{}

func (res receiveMessageRes) Code() int {
	return http.StatusCreated
}

func (res receiveMessageRes) Headers() map[string]string {
	return map[string]string{}
}

func (res receiveMessageRes) Empty() bool {
	return true
}
