package service

// Services bundles the services shared by the bot and the HTTP API
type Services struct {
	Members    *MemberService
	Calendar   *CalendarService
	Tasks      *TaskService
	Chats      *ChatService
	Profiles   *ProfileService
	Home       *HomeService
	Activities *ActivityService
}
