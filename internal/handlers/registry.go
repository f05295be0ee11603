package handlers

// AppHandlers holds every HTTP handler of the application.
type AppHandlers struct {
	AuthHandler         *AuthHandler
	PropertyHandler     *PropertyHandler
	VideoHandler        *VideoHandler
	TemplateHandler     *TemplateHandler
	MatchingHandler     *MatchingHandler
	NotificationHandler *NotificationHandler
	DashboardHandler    *DashboardHandler
}
