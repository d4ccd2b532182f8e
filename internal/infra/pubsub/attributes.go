package pubsub

import (
	"strconv"

	"board/internal/domain/service"
)

// eventAttributes builds the message attributes shared by every publisher.
func eventAttributes(event *service.CommentEvent) map[string]string {
	attributes := map[string]string{
		"type":       event.Type,
		"comment_id": strconv.FormatInt(event.CommentID, 10),
		"task_id":    strconv.FormatInt(event.TaskID, 10),
	}
	if event.ParentID != nil {
		attributes["parent_id"] = strconv.FormatInt(*event.ParentID, 10)
	}
	if event.RequestID != "" {
		attributes["request_id"] = event.RequestID
	}

	return attributes
}
