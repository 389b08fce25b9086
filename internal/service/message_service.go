package service

import (
	"context"
	goerrors "errors"

	"github.com/Knoblauchpilze/backend-toolkit/pkg/errors"
	"github.com/Knoblauchpilze/backend-toolkit/pkg/logger"
	"github.com/Knoblauchpilze/record-api/pkg/communication"
	"github.com/Knoblauchpilze/record-api/pkg/db"
	"github.com/Knoblauchpilze/record-api/pkg/persistence"
	"github.com/Knoblauchpilze/record-api/pkg/repositories"
	"github.com/go-playground/validator/v10"
	"github.com/samber/lo"
)

const messageRecordedText = "Message recorded successfully"

// Any stored participant can be listed, negative ids included.
const userValidationTag = "ne=0,min=-2147483648,max=2147483647"

type MessageService interface {
	Record(ctx context.Context, messageDto communication.MessageDtoRequest) (communication.RecordedMessageDtoResponse, error)
	ListForUser(ctx context.Context, user int64) ([]communication.MessageDtoResponse, error)
}

type messageServiceImpl struct {
	messageRepo repositories.MessageRepository
	validate    *validator.Validate
	log         logger.Logger
}

func NewMessageService(repos repositories.Repositories, log logger.Logger) MessageService {
	return &messageServiceImpl{
		messageRepo: repos.Message,
		validate:    validator.New(),
		log:         log,
	}
}

func (s *messageServiceImpl) Record(
	ctx context.Context, messageDto communication.MessageDtoRequest,
) (communication.RecordedMessageDtoResponse, error) {
	if err := s.validateMessage(messageDto); err != nil {
		s.log.Warnf("Rejected message: %s", Describe(err))
		return communication.RecordedMessageDtoResponse{}, err
	}

	message := communication.FromMessageDtoRequest(messageDto)

	created, err := s.messageRepo.Create(ctx, message)
	if err != nil {
		err = wrapStoreError(err, ErrRecordFailed)
		s.log.Errorf("Failed to record message from %d: %s", message.SenderId, Describe(err))
		return communication.RecordedMessageDtoResponse{}, err
	}

	s.log.Infof("Recorded message %d from %d", created.Id, created.SenderId)

	out := communication.RecordedMessageDtoResponse{
		Message:   messageRecordedText,
		MessageId: created.Id,
	}
	return out, nil
}

func (s *messageServiceImpl) ListForUser(
	ctx context.Context, user int64,
) ([]communication.MessageDtoResponse, error) {
	if err := s.validate.Var(user, userValidationTag); err != nil {
		s.log.Warnf("Rejected listing for user %d", user)
		return nil, errors.NewCode(ErrInvalidUser)
	}

	messages, err := s.messageRepo.ListForUser(ctx, user)
	if err != nil {
		err = wrapStoreError(err, ErrListFailed)
		s.log.Errorf("Failed to fetch messages for %d: %s", user, Describe(err))
		return nil, err
	}

	s.log.Infof("Fetched %d message(s) for user %d", len(messages), user)

	out := lo.Map(messages, func(msg persistence.Message, _ int) communication.MessageDtoResponse {
		return communication.ToMessageDtoResponse(msg)
	})
	return out, nil
}

func (s *messageServiceImpl) validateMessage(messageDto communication.MessageDtoRequest) error {
	err := s.validate.Struct(messageDto)
	if err == nil {
		return nil
	}

	var fieldErrs validator.ValidationErrors
	if !goerrors.As(err, &fieldErrs) || len(fieldErrs) == 0 {
		return errors.WrapCode(err, ErrMissingMessage)
	}

	switch first := fieldErrs[0]; first.StructField() {
	case "SenderId":
		if first.Tag() == "required" {
			return errors.NewCode(ErrMissingSender)
		}
		return errors.NewCode(ErrInvalidParticipant)
	case "ReceiverId":
		return errors.NewCode(ErrInvalidParticipant)
	case "Message":
		if first.Tag() == "min" {
			return errors.NewCode(ErrEmptyMessage)
		}
		return errors.NewCode(ErrMissingMessage)
	default:
		return errors.WrapCode(err, ErrMissingMessage)
	}
}

func wrapStoreError(err error, fallback errors.ErrorCode) error {
	if errors.IsErrorWithCode(err, db.ConnectionFailed) ||
		errors.IsErrorWithCode(err, db.NotConnected) {
		return errors.WrapCode(err, ErrStoreUnavailable)
	}

	return errors.WrapCode(err, fallback)
}
