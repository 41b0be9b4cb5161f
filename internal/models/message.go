// Package models holds the wire and storage types shared between the chat
// server and the client library.
package models

import "time"

// MessagePointer is one message-index entry: routing metadata plus a
// reference into the content store. It never carries message text.
//
// A pointer is uniquely identified by (ContainerID, DocumentID). Seq is
// assigned by the index on insert and breaks ordering ties between pointers
// with equal client-supplied timestamps.
type MessagePointer struct {
	Seq         int64     `json:"-"`
	CreatedAt   time.Time `json:"createdAt"`
	FromUserID  string    `json:"fromUserId"`
	ToUserID    string    `json:"toUserId"`
	ContainerID string    `json:"containerId"`
	DocumentID  string    `json:"documentId"`
}
