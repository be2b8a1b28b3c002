package services

import (
	"careerhub-backend/internal/models"
	"careerhub-backend/internal/repository"
)

// testEnv wires the engagement core against fresh in-memory stores.
type testEnv struct {
	users            *repository.UserRepository
	settings         *repository.SettingsRepository
	notificationRepo *repository.NotificationRepository
	achievementRepo  *repository.AchievementRepository
	favorites        *repository.FavoriteRepository
	postRepo         *repository.PostRepository

	moderator     *Moderator
	notifications *NotificationService
	achievements  *AchievementService
	posts         *PostService
	messages      *MessageService
	dreamJobs     *DreamJobService
}

func newTestEnv() *testEnv {
	env := &testEnv{
		users:            repository.NewUserRepository(),
		settings:         repository.NewSettingsRepository(),
		notificationRepo: repository.NewNotificationRepository(100),
		achievementRepo:  repository.NewAchievementRepository(),
		favorites:        repository.NewFavoriteRepository(),
		postRepo:         repository.NewPostRepository(),
	}
	env.moderator = NewModerator(nil)
	env.notifications = NewNotificationService(env.notificationRepo)
	env.achievements = NewAchievementService(env.achievementRepo, env.users)
	env.posts = NewPostService(
		env.postRepo,
		repository.NewLikeRecordRepository(50),
		env.favorites,
		repository.NewTagHistoryRepository(),
		env.users,
		env.moderator,
		env.notifications,
		300,
	)
	env.messages = NewMessageService(
		repository.NewMessageRepository(),
		env.users,
		env.settings,
		env.moderator,
		env.notifications,
		1000,
	)
	env.dreamJobs = NewDreamJobService(
		repository.NewCompanyRepository(),
		repository.NewOfferRepository(),
		repository.NewCompanyVoteRepository(),
		env.users,
		env.moderator,
		env.achievements,
	)
	return env
}

func (e *testEnv) addUser(id, name string, verified bool) {
	_ = e.users.Create(&models.User{
		ID:       id,
		Email:    id + "@example.com",
		Profile:  models.Profile{Name: name},
		Verified: verified,
	})
}
