package service

import (
	"context"

	"qenea/internal/models"
	"qenea/internal/repository"
)

type userRepoStub struct {
	getByIDFn       func(context.Context, uint) (*models.User, error)
	getByEmailFn    func(context.Context, string) (*models.User, error)
	getByUsernameFn func(context.Context, string) (*models.User, error)
	createFn        func(context.Context, *models.User) error
	updateFn        func(context.Context, *models.User) error
	deleteFn        func(context.Context, uint) error
	listFn          func(context.Context, int, int) ([]models.User, error)
}

func (s *userRepoStub) GetByID(ctx context.Context, id uint) (*models.User, error) {
	return s.getByIDFn(ctx, id)
}
func (s *userRepoStub) GetByEmail(ctx context.Context, email string) (*models.User, error) {
	return s.getByEmailFn(ctx, email)
}
func (s *userRepoStub) GetByUsername(ctx context.Context, username string) (*models.User, error) {
	return s.getByUsernameFn(ctx, username)
}
func (s *userRepoStub) Create(ctx context.Context, user *models.User) error {
	return s.createFn(ctx, user)
}
func (s *userRepoStub) Update(ctx context.Context, user *models.User) error {
	return s.updateFn(ctx, user)
}
func (s *userRepoStub) Delete(ctx context.Context, id uint) error { return s.deleteFn(ctx, id) }
func (s *userRepoStub) List(ctx context.Context, limit, offset int) ([]models.User, error) {
	return s.listFn(ctx, limit, offset)
}

func noopUserRepo() *userRepoStub {
	return &userRepoStub{
		getByIDFn:       func(_ context.Context, id uint) (*models.User, error) { return &models.User{ID: id}, nil },
		getByEmailFn:    func(context.Context, string) (*models.User, error) { return nil, nil },
		getByUsernameFn: func(context.Context, string) (*models.User, error) { return nil, nil },
		createFn:        func(context.Context, *models.User) error { return nil },
		updateFn:        func(context.Context, *models.User) error { return nil },
		deleteFn:        func(context.Context, uint) error { return nil },
		listFn:          func(context.Context, int, int) ([]models.User, error) { return nil, nil },
	}
}

type voteRepoStub struct {
	toggleFn       func(context.Context, uint, models.VoteTargetKind, uint, int) (*models.VoteState, error)
	getUserVoteFn  func(context.Context, uint, models.VoteTargetKind, uint) (int, error)
	sumPointsFn    func(context.Context, models.VoteTargetKind, uint) (int, error)
	targetExistsFn func(context.Context, models.VoteTargetKind, uint) (bool, error)
}

func (s *voteRepoStub) Toggle(ctx context.Context, userID uint, kind models.VoteTargetKind, targetID uint, value int) (*models.VoteState, error) {
	return s.toggleFn(ctx, userID, kind, targetID, value)
}
func (s *voteRepoStub) GetUserVote(ctx context.Context, userID uint, kind models.VoteTargetKind, targetID uint) (int, error) {
	return s.getUserVoteFn(ctx, userID, kind, targetID)
}
func (s *voteRepoStub) SumPoints(ctx context.Context, kind models.VoteTargetKind, targetID uint) (int, error) {
	return s.sumPointsFn(ctx, kind, targetID)
}
func (s *voteRepoStub) TargetExists(ctx context.Context, kind models.VoteTargetKind, targetID uint) (bool, error) {
	return s.targetExistsFn(ctx, kind, targetID)
}

func noopVoteRepo() *voteRepoStub {
	return &voteRepoStub{
		toggleFn: func(_ context.Context, _ uint, kind models.VoteTargetKind, targetID uint, value int) (*models.VoteState, error) {
			return &models.VoteState{TargetKind: kind, TargetID: targetID, UserVote: value, Points: value}, nil
		},
		getUserVoteFn:  func(context.Context, uint, models.VoteTargetKind, uint) (int, error) { return 0, nil },
		sumPointsFn:    func(context.Context, models.VoteTargetKind, uint) (int, error) { return 0, nil },
		targetExistsFn: func(context.Context, models.VoteTargetKind, uint) (bool, error) { return true, nil },
	}
}

type questionRepoStub struct {
	createFn    func(context.Context, *models.Question, []string) error
	getByIDFn   func(context.Context, uint) (*models.Question, error)
	getBySlugFn func(context.Context, string) (*models.Question, error)
	listFn      func(context.Context, repository.ListQuestionsOptions) ([]models.Question, int64, error)
	updateFn    func(context.Context, *models.Question, []string) error
	deleteFn    func(context.Context, uint) error
	listTagsFn  func(context.Context, int, int) ([]models.Tag, error)
}

func (s *questionRepoStub) Create(ctx context.Context, q *models.Question, tags []string) error {
	return s.createFn(ctx, q, tags)
}
func (s *questionRepoStub) GetByID(ctx context.Context, id uint) (*models.Question, error) {
	return s.getByIDFn(ctx, id)
}
func (s *questionRepoStub) GetBySlug(ctx context.Context, slug string) (*models.Question, error) {
	return s.getBySlugFn(ctx, slug)
}
func (s *questionRepoStub) List(ctx context.Context, opts repository.ListQuestionsOptions) ([]models.Question, int64, error) {
	return s.listFn(ctx, opts)
}
func (s *questionRepoStub) Update(ctx context.Context, q *models.Question, tags []string) error {
	return s.updateFn(ctx, q, tags)
}
func (s *questionRepoStub) Delete(ctx context.Context, id uint) error { return s.deleteFn(ctx, id) }
func (s *questionRepoStub) ListTags(ctx context.Context, limit, offset int) ([]models.Tag, error) {
	return s.listTagsFn(ctx, limit, offset)
}

func noopQuestionRepo() *questionRepoStub {
	return &questionRepoStub{
		createFn: func(context.Context, *models.Question, []string) error { return nil },
		getByIDFn: func(_ context.Context, id uint) (*models.Question, error) {
			return &models.Question{ID: id, UserID: 1}, nil
		},
		getBySlugFn: func(context.Context, string) (*models.Question, error) { return &models.Question{}, nil },
		listFn: func(context.Context, repository.ListQuestionsOptions) ([]models.Question, int64, error) {
			return nil, 0, nil
		},
		updateFn:   func(context.Context, *models.Question, []string) error { return nil },
		deleteFn:   func(context.Context, uint) error { return nil },
		listTagsFn: func(context.Context, int, int) ([]models.Tag, error) { return nil, nil },
	}
}

type answerRepoStub struct {
	createFn           func(context.Context, *models.Answer) error
	getByIDFn          func(context.Context, uint) (*models.Answer, error)
	listByQuestionFn   func(context.Context, uint, int, int) ([]models.Answer, error)
	updateFn           func(context.Context, *models.Answer) error
	deleteFn           func(context.Context, uint) error
	toggleAcceptanceFn func(context.Context, uint, uint) (*models.Answer, error)
}

func (s *answerRepoStub) Create(ctx context.Context, a *models.Answer) error {
	return s.createFn(ctx, a)
}
func (s *answerRepoStub) GetByID(ctx context.Context, id uint) (*models.Answer, error) {
	return s.getByIDFn(ctx, id)
}
func (s *answerRepoStub) ListByQuestion(ctx context.Context, questionID uint, limit, offset int) ([]models.Answer, error) {
	return s.listByQuestionFn(ctx, questionID, limit, offset)
}
func (s *answerRepoStub) Update(ctx context.Context, a *models.Answer) error {
	return s.updateFn(ctx, a)
}
func (s *answerRepoStub) Delete(ctx context.Context, id uint) error { return s.deleteFn(ctx, id) }
func (s *answerRepoStub) ToggleAcceptance(ctx context.Context, answerID, actorID uint) (*models.Answer, error) {
	return s.toggleAcceptanceFn(ctx, answerID, actorID)
}

func noopAnswerRepo() *answerRepoStub {
	return &answerRepoStub{
		createFn: func(context.Context, *models.Answer) error { return nil },
		getByIDFn: func(_ context.Context, id uint) (*models.Answer, error) {
			return &models.Answer{ID: id, UserID: 1, QuestionID: 1}, nil
		},
		listByQuestionFn: func(context.Context, uint, int, int) ([]models.Answer, error) { return nil, nil },
		updateFn:         func(context.Context, *models.Answer) error { return nil },
		deleteFn:         func(context.Context, uint) error { return nil },
		toggleAcceptanceFn: func(_ context.Context, answerID, _ uint) (*models.Answer, error) {
			return &models.Answer{ID: answerID, IsAccepted: true}, nil
		},
	}
}

type commentRepoStub struct {
	createFn       func(context.Context, *models.Comment) error
	getByIDFn      func(context.Context, uint) (*models.Comment, error)
	listByTargetFn func(context.Context, models.CommentableKind, uint, int, int) ([]models.Comment, error)
	updateFn       func(context.Context, *models.Comment) error
	deleteFn       func(context.Context, uint) error
	targetExistsFn func(context.Context, models.CommentableKind, uint) (bool, error)
}

func (s *commentRepoStub) Create(ctx context.Context, c *models.Comment) error {
	return s.createFn(ctx, c)
}
func (s *commentRepoStub) GetByID(ctx context.Context, id uint) (*models.Comment, error) {
	return s.getByIDFn(ctx, id)
}
func (s *commentRepoStub) ListByTarget(ctx context.Context, kind models.CommentableKind, targetID uint, limit, offset int) ([]models.Comment, error) {
	return s.listByTargetFn(ctx, kind, targetID, limit, offset)
}
func (s *commentRepoStub) Update(ctx context.Context, c *models.Comment) error {
	return s.updateFn(ctx, c)
}
func (s *commentRepoStub) Delete(ctx context.Context, id uint) error { return s.deleteFn(ctx, id) }
func (s *commentRepoStub) TargetExists(ctx context.Context, kind models.CommentableKind, targetID uint) (bool, error) {
	return s.targetExistsFn(ctx, kind, targetID)
}

func noopCommentRepo() *commentRepoStub {
	return &commentRepoStub{
		createFn: func(context.Context, *models.Comment) error { return nil },
		getByIDFn: func(_ context.Context, id uint) (*models.Comment, error) {
			return &models.Comment{ID: id, UserID: 1}, nil
		},
		listByTargetFn: func(context.Context, models.CommentableKind, uint, int, int) ([]models.Comment, error) {
			return nil, nil
		},
		updateFn:       func(context.Context, *models.Comment) error { return nil },
		deleteFn:       func(context.Context, uint) error { return nil },
		targetExistsFn: func(context.Context, models.CommentableKind, uint) (bool, error) { return true, nil },
	}
}

type profileRepoStub struct {
	getByIDFn       func(context.Context, uint) (*models.Profile, error)
	getByUserIDFn   func(context.Context, uint) (*models.Profile, error)
	getByUsernameFn func(context.Context, string) (*models.Profile, error)
	updateFn        func(context.Context, *models.Profile) error
	toggleFollowFn  func(context.Context, uint, uint) (bool, error)
	isFollowingFn   func(context.Context, uint, uint) (bool, error)
	listFollowersFn func(context.Context, uint, int, int) ([]models.Profile, error)
	listFollowingFn func(context.Context, uint, int, int) ([]models.Profile, error)
}

func (s *profileRepoStub) GetByID(ctx context.Context, id uint) (*models.Profile, error) {
	return s.getByIDFn(ctx, id)
}
func (s *profileRepoStub) GetByUserID(ctx context.Context, userID uint) (*models.Profile, error) {
	return s.getByUserIDFn(ctx, userID)
}
func (s *profileRepoStub) GetByUsername(ctx context.Context, username string) (*models.Profile, error) {
	return s.getByUsernameFn(ctx, username)
}
func (s *profileRepoStub) Update(ctx context.Context, p *models.Profile) error {
	return s.updateFn(ctx, p)
}
func (s *profileRepoStub) ToggleFollow(ctx context.Context, followerID, followeeID uint) (bool, error) {
	return s.toggleFollowFn(ctx, followerID, followeeID)
}
func (s *profileRepoStub) IsFollowing(ctx context.Context, followerID, followeeID uint) (bool, error) {
	return s.isFollowingFn(ctx, followerID, followeeID)
}
func (s *profileRepoStub) ListFollowers(ctx context.Context, profileID uint, limit, offset int) ([]models.Profile, error) {
	return s.listFollowersFn(ctx, profileID, limit, offset)
}
func (s *profileRepoStub) ListFollowing(ctx context.Context, profileID uint, limit, offset int) ([]models.Profile, error) {
	return s.listFollowingFn(ctx, profileID, limit, offset)
}

func noopProfileRepo() *profileRepoStub {
	return &profileRepoStub{
		getByIDFn: func(_ context.Context, id uint) (*models.Profile, error) {
			return &models.Profile{ID: id}, nil
		},
		getByUserIDFn: func(_ context.Context, userID uint) (*models.Profile, error) {
			return &models.Profile{ID: userID, UserID: userID}, nil
		},
		getByUsernameFn: func(context.Context, string) (*models.Profile, error) {
			return &models.Profile{ID: 99, UserID: 99}, nil
		},
		updateFn:       func(context.Context, *models.Profile) error { return nil },
		toggleFollowFn: func(context.Context, uint, uint) (bool, error) { return true, nil },
		isFollowingFn:  func(context.Context, uint, uint) (bool, error) { return false, nil },
		listFollowersFn: func(context.Context, uint, int, int) ([]models.Profile, error) {
			return nil, nil
		},
		listFollowingFn: func(context.Context, uint, int, int) ([]models.Profile, error) {
			return nil, nil
		},
	}
}
