package handler

import (
	activitydomain "chapter-app-go/internal/domain/activity"
	chapterdomain "chapter-app-go/internal/domain/chapter"
	topicdomain "chapter-app-go/internal/domain/topic"
	userdomain "chapter-app-go/internal/domain/user"
	"chapter-app-go/pkg/logger"
)

type Handlers struct {
	Chapters   *chapterdomain.Service
	Users      *userdomain.Service
	Topics     *topicdomain.Service
	Activities *activitydomain.Service
	log        logger.Logger
}

func New(chapters *chapterdomain.Service, users *userdomain.Service, topics *topicdomain.Service, activities *activitydomain.Service, log logger.Logger) *Handlers {
	return &Handlers{
		Chapters:   chapters,
		Users:      users,
		Topics:     topics,
		Activities: activities,
		log:        log,
	}
}
