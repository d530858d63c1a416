package server

import (
	"context"

	"qenea/internal/models"
	"qenea/internal/repository"

	"github.com/stretchr/testify/mock"
)

// MockUserRepository is a mock of the UserRepository interface
type MockUserRepository struct {
	mock.Mock
}

func (m *MockUserRepository) GetByID(ctx context.Context, id uint) (*models.User, error) {
	args := m.Called(ctx, id)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*models.User), args.Error(1)
}

func (m *MockUserRepository) GetByEmail(ctx context.Context, email string) (*models.User, error) {
	args := m.Called(ctx, email)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*models.User), args.Error(1)
}

func (m *MockUserRepository) GetByUsername(ctx context.Context, username string) (*models.User, error) {
	args := m.Called(ctx, username)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*models.User), args.Error(1)
}

func (m *MockUserRepository) Create(ctx context.Context, user *models.User) error {
	args := m.Called(ctx, user)
	return args.Error(0)
}

func (m *MockUserRepository) Update(ctx context.Context, user *models.User) error {
	args := m.Called(ctx, user)
	return args.Error(0)
}

func (m *MockUserRepository) Delete(ctx context.Context, id uint) error {
	args := m.Called(ctx, id)
	return args.Error(0)
}

func (m *MockUserRepository) List(ctx context.Context, limit, offset int) ([]models.User, error) {
	args := m.Called(ctx, limit, offset)
	return args.Get(0).([]models.User), args.Error(1)
}

// MockQuestionRepository is a mock of the QuestionRepository interface
type MockQuestionRepository struct {
	mock.Mock
}

func (m *MockQuestionRepository) Create(ctx context.Context, question *models.Question, tagNames []string) error {
	args := m.Called(ctx, question, tagNames)
	return args.Error(0)
}

func (m *MockQuestionRepository) GetByID(ctx context.Context, id uint) (*models.Question, error) {
	args := m.Called(ctx, id)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*models.Question), args.Error(1)
}

func (m *MockQuestionRepository) GetBySlug(ctx context.Context, slug string) (*models.Question, error) {
	args := m.Called(ctx, slug)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*models.Question), args.Error(1)
}

func (m *MockQuestionRepository) List(ctx context.Context, opts repository.ListQuestionsOptions) ([]models.Question, int64, error) {
	args := m.Called(ctx, opts)
	return args.Get(0).([]models.Question), args.Get(1).(int64), args.Error(2)
}

func (m *MockQuestionRepository) Update(ctx context.Context, question *models.Question, tagNames []string) error {
	args := m.Called(ctx, question, tagNames)
	return args.Error(0)
}

func (m *MockQuestionRepository) Delete(ctx context.Context, id uint) error {
	args := m.Called(ctx, id)
	return args.Error(0)
}

func (m *MockQuestionRepository) ListTags(ctx context.Context, limit, offset int) ([]models.Tag, error) {
	args := m.Called(ctx, limit, offset)
	return args.Get(0).([]models.Tag), args.Error(1)
}

// MockAnswerRepository is a mock of the AnswerRepository interface
type MockAnswerRepository struct {
	mock.Mock
}

func (m *MockAnswerRepository) Create(ctx context.Context, answer *models.Answer) error {
	args := m.Called(ctx, answer)
	return args.Error(0)
}

func (m *MockAnswerRepository) GetByID(ctx context.Context, id uint) (*models.Answer, error) {
	args := m.Called(ctx, id)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*models.Answer), args.Error(1)
}

func (m *MockAnswerRepository) ListByQuestion(ctx context.Context, questionID uint, limit, offset int) ([]models.Answer, error) {
	args := m.Called(ctx, questionID, limit, offset)
	return args.Get(0).([]models.Answer), args.Error(1)
}

func (m *MockAnswerRepository) Update(ctx context.Context, answer *models.Answer) error {
	args := m.Called(ctx, answer)
	return args.Error(0)
}

func (m *MockAnswerRepository) Delete(ctx context.Context, id uint) error {
	args := m.Called(ctx, id)
	return args.Error(0)
}

func (m *MockAnswerRepository) ToggleAcceptance(ctx context.Context, answerID, actorID uint) (*models.Answer, error) {
	args := m.Called(ctx, answerID, actorID)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*models.Answer), args.Error(1)
}

// MockCommentRepository is a mock of the CommentRepository interface
type MockCommentRepository struct {
	mock.Mock
}

func (m *MockCommentRepository) Create(ctx context.Context, comment *models.Comment) error {
	args := m.Called(ctx, comment)
	return args.Error(0)
}

func (m *MockCommentRepository) GetByID(ctx context.Context, id uint) (*models.Comment, error) {
	args := m.Called(ctx, id)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*models.Comment), args.Error(1)
}

func (m *MockCommentRepository) ListByTarget(ctx context.Context, kind models.CommentableKind, targetID uint, limit, offset int) ([]models.Comment, error) {
	args := m.Called(ctx, kind, targetID, limit, offset)
	return args.Get(0).([]models.Comment), args.Error(1)
}

func (m *MockCommentRepository) Update(ctx context.Context, comment *models.Comment) error {
	args := m.Called(ctx, comment)
	return args.Error(0)
}

func (m *MockCommentRepository) Delete(ctx context.Context, id uint) error {
	args := m.Called(ctx, id)
	return args.Error(0)
}

func (m *MockCommentRepository) TargetExists(ctx context.Context, kind models.CommentableKind, targetID uint) (bool, error) {
	args := m.Called(ctx, kind, targetID)
	return args.Bool(0), args.Error(1)
}

// MockVoteRepository is a mock of the VoteRepository interface
type MockVoteRepository struct {
	mock.Mock
}

func (m *MockVoteRepository) Toggle(ctx context.Context, userID uint, kind models.VoteTargetKind, targetID uint, value int) (*models.VoteState, error) {
	args := m.Called(ctx, userID, kind, targetID, value)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*models.VoteState), args.Error(1)
}

func (m *MockVoteRepository) GetUserVote(ctx context.Context, userID uint, kind models.VoteTargetKind, targetID uint) (int, error) {
	args := m.Called(ctx, userID, kind, targetID)
	return args.Int(0), args.Error(1)
}

func (m *MockVoteRepository) SumPoints(ctx context.Context, kind models.VoteTargetKind, targetID uint) (int, error) {
	args := m.Called(ctx, kind, targetID)
	return args.Int(0), args.Error(1)
}

func (m *MockVoteRepository) TargetExists(ctx context.Context, kind models.VoteTargetKind, targetID uint) (bool, error) {
	args := m.Called(ctx, kind, targetID)
	return args.Bool(0), args.Error(1)
}

// MockProfileRepository is a mock of the ProfileRepository interface
type MockProfileRepository struct {
	mock.Mock
}

func (m *MockProfileRepository) GetByID(ctx context.Context, id uint) (*models.Profile, error) {
	args := m.Called(ctx, id)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*models.Profile), args.Error(1)
}

func (m *MockProfileRepository) GetByUserID(ctx context.Context, userID uint) (*models.Profile, error) {
	args := m.Called(ctx, userID)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*models.Profile), args.Error(1)
}

func (m *MockProfileRepository) GetByUsername(ctx context.Context, username string) (*models.Profile, error) {
	args := m.Called(ctx, username)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*models.Profile), args.Error(1)
}

func (m *MockProfileRepository) Update(ctx context.Context, profile *models.Profile) error {
	args := m.Called(ctx, profile)
	return args.Error(0)
}

func (m *MockProfileRepository) ToggleFollow(ctx context.Context, followerID, followeeID uint) (bool, error) {
	args := m.Called(ctx, followerID, followeeID)
	return args.Bool(0), args.Error(1)
}

func (m *MockProfileRepository) IsFollowing(ctx context.Context, followerID, followeeID uint) (bool, error) {
	args := m.Called(ctx, followerID, followeeID)
	return args.Bool(0), args.Error(1)
}

func (m *MockProfileRepository) ListFollowers(ctx context.Context, profileID uint, limit, offset int) ([]models.Profile, error) {
	args := m.Called(ctx, profileID, limit, offset)
	return args.Get(0).([]models.Profile), args.Error(1)
}

func (m *MockProfileRepository) ListFollowing(ctx context.Context, profileID uint, limit, offset int) ([]models.Profile, error) {
	args := m.Called(ctx, profileID, limit, offset)
	return args.Get(0).([]models.Profile), args.Error(1)
}
