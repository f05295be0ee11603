package models

type UserStatus string
type UserRole string
type PropertyType string
type VideoStatus string
type TimelineStatus string
type NotificationType string

const (
	UserStatusPending   UserStatus = "pending"
	UserStatusActive    UserStatus = "active"
	UserStatusSuspended UserStatus = "suspended"

	UserRoleOwner   UserRole = "owner"
	UserRoleManager UserRole = "manager"
	UserRoleAdmin   UserRole = "admin"

	PropertyTypeHotel      PropertyType = "hotel"
	PropertyTypeRestaurant PropertyType = "restaurant"
	PropertyTypeCafe       PropertyType = "cafe"
	PropertyTypeBar        PropertyType = "bar"

	// A video enters the library as uploaded, goes through the external
	// captioning pipeline as processing, and becomes matchable once
	// described. Failed videos stay in the library but never match.
	VideoStatusUploaded   VideoStatus = "uploaded"
	VideoStatusProcessing VideoStatus = "processing"
	VideoStatusDescribed  VideoStatus = "described"
	VideoStatusFailed     VideoStatus = "failed"

	TimelineStatusDraft     TimelineStatus = "draft"
	TimelineStatusQueued    TimelineStatus = "queued"
	TimelineStatusRendering TimelineStatus = "rendering"
	TimelineStatusReady     TimelineStatus = "ready"
	TimelineStatusFailed    TimelineStatus = "failed"

	NotificationTypeTimelineReady  NotificationType = "timeline_ready"
	NotificationTypeTimelineFailed NotificationType = "timeline_failed"
	NotificationTypeVideoDescribed NotificationType = "video_described"
	NotificationTypeLowConfidence  NotificationType = "low_confidence_match"
)
