package service_test

import (
	"context"
	"testing"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"

	"agencyhub/internal/domain"
	"agencyhub/internal/service"
	"agencyhub/mocks"
)

func newMessageService() (service.MessageService, *mocks.MockMessageRepo, *mocks.MockUserRepo, *mocks.MockNotificationService) {
	messageRepo := new(mocks.MockMessageRepo)
	userRepo := new(mocks.MockUserRepo)
	notifSvc := new(mocks.MockNotificationService)
	svc := service.NewMessageService(messageRepo, userRepo, notifSvc)
	return svc, messageRepo, userRepo, notifSvc
}

func TestMessageService_Send_ExplicitRecipient(t *testing.T) {
	svc, messageRepo, userRepo, notifSvc := newMessageService()

	sender := &domain.User{ID: uuid.New(), FullName: "Admin", Role: domain.RoleAdmin}
	recipient := &domain.User{ID: uuid.New(), FullName: "Client", Role: domain.RoleClient}

	userRepo.On("GetByID", mock.Anything, sender.ID).Return(sender, nil)
	userRepo.On("GetByID", mock.Anything, recipient.ID).Return(recipient, nil)
	messageRepo.On("Create", mock.Anything, mock.AnythingOfType("*domain.Message")).Return(nil)
	notifSvc.On("Notify", mock.Anything, recipient.ID, &sender.ID, mock.AnythingOfType("service.NotificationPayload")).Return(&domain.Notification{}, nil)

	msg, err := svc.Send(context.Background(), sender.ID, service.SendMessageInput{
		ToUserID: &recipient.ID,
		Subject:  "Kickoff",
		Content:  "Let's start Monday.",
	})

	assert.NoError(t, err)
	assert.Equal(t, sender.ID, msg.FromUserID)
	assert.Equal(t, recipient.ID, msg.ToUserID)
	assert.Equal(t, domain.RoleAdmin, msg.FromRole)
	assert.Equal(t, domain.RoleClient, msg.ToRole)
	assert.Equal(t, domain.MessageStatusUnread, msg.Status)
	assert.Equal(t, domain.PriorityMedium, msg.Priority)
	notifSvc.AssertExpectations(t)
}

func TestMessageService_Send_ClientDefaultsToFirstAdmin(t *testing.T) {
	svc, messageRepo, userRepo, notifSvc := newMessageService()

	sender := &domain.User{ID: uuid.New(), FullName: "Client", Role: domain.RoleClient}
	admins := []domain.User{
		{ID: uuid.New(), FullName: "Admin One", Role: domain.RoleAdmin},
		{ID: uuid.New(), FullName: "Admin Two", Role: domain.RoleAdmin},
	}

	userRepo.On("GetByID", mock.Anything, sender.ID).Return(sender, nil)
	userRepo.On("ListActiveByRole", mock.Anything, domain.RoleAdmin).Return(admins, nil)
	messageRepo.On("Create", mock.Anything, mock.AnythingOfType("*domain.Message")).Return(nil)
	notifSvc.On("Notify", mock.Anything, admins[0].ID, mock.Anything, mock.Anything).Return(&domain.Notification{}, nil)

	msg, err := svc.Send(context.Background(), sender.ID, service.SendMessageInput{
		Subject: "Question",
		Content: "When is the next invoice due?",
	})

	assert.NoError(t, err)
	assert.Equal(t, admins[0].ID, msg.ToUserID)
}

func TestMessageService_Send_NoActiveAdmins(t *testing.T) {
	svc, messageRepo, userRepo, _ := newMessageService()

	sender := &domain.User{ID: uuid.New(), Role: domain.RoleClient}

	userRepo.On("GetByID", mock.Anything, sender.ID).Return(sender, nil)
	userRepo.On("ListActiveByRole", mock.Anything, domain.RoleAdmin).Return([]domain.User{}, nil)

	msg, err := svc.Send(context.Background(), sender.ID, service.SendMessageInput{Subject: "x", Content: "y"})

	assert.Nil(t, msg)
	assert.ErrorIs(t, err, domain.ErrNoAdminRecipients)
	messageRepo.AssertNotCalled(t, "Create", mock.Anything, mock.Anything)
}

func TestMessageService_Send_NotificationFailureDoesNotFailSend(t *testing.T) {
	svc, messageRepo, userRepo, notifSvc := newMessageService()

	sender := &domain.User{ID: uuid.New(), Role: domain.RoleClient}
	recipient := &domain.User{ID: uuid.New(), Role: domain.RoleAdmin}

	userRepo.On("GetByID", mock.Anything, sender.ID).Return(sender, nil)
	userRepo.On("GetByID", mock.Anything, recipient.ID).Return(recipient, nil)
	messageRepo.On("Create", mock.Anything, mock.AnythingOfType("*domain.Message")).Return(nil)
	notifSvc.On("Notify", mock.Anything, mock.Anything, mock.Anything, mock.Anything).Return(nil, assert.AnError)

	msg, err := svc.Send(context.Background(), sender.ID, service.SendMessageInput{
		ToUserID: &recipient.ID,
		Subject:  "x",
		Content:  "y",
	})

	assert.NoError(t, err)
	assert.NotNil(t, msg)
}

func TestMessageService_Reply_Success(t *testing.T) {
	svc, messageRepo, userRepo, notifSvc := newMessageService()

	client := &domain.User{ID: uuid.New(), FullName: "Client", Role: domain.RoleClient}
	admin := &domain.User{ID: uuid.New(), FullName: "Admin", Role: domain.RoleAdmin}
	original := &domain.Message{
		ID:         uuid.New(),
		FromUserID: client.ID,
		ToUserID:   admin.ID,
		Subject:    "Question",
		Priority:   domain.PriorityHigh,
		Status:     domain.MessageStatusRead,
	}

	messageRepo.On("GetByID", mock.Anything, original.ID).Return(original, nil)
	userRepo.On("GetByID", mock.Anything, admin.ID).Return(admin, nil)
	userRepo.On("GetByID", mock.Anything, client.ID).Return(client, nil)
	messageRepo.On("Create", mock.Anything, mock.AnythingOfType("*domain.Message")).Return(nil)
	messageRepo.On("UpdateStatus", mock.Anything, original.ID, domain.MessageStatusReplied).Return(nil)
	notifSvc.On("Notify", mock.Anything, client.ID, &admin.ID, mock.Anything).Return(&domain.Notification{}, nil)

	reply, err := svc.Reply(context.Background(), original.ID, admin.ID, service.ReplyInput{Content: "Answer"})

	assert.NoError(t, err)
	assert.Equal(t, "Re: Question", reply.Subject)
	assert.Equal(t, client.ID, reply.ToUserID)
	assert.Equal(t, &original.ID, reply.ReplyTo)
	assert.Equal(t, domain.PriorityHigh, reply.Priority)
	messageRepo.AssertExpectations(t)
}

func TestMessageService_Reply_NotParticipant(t *testing.T) {
	svc, messageRepo, _, _ := newMessageService()

	original := &domain.Message{ID: uuid.New(), FromUserID: uuid.New(), ToUserID: uuid.New()}
	messageRepo.On("GetByID", mock.Anything, original.ID).Return(original, nil)

	reply, err := svc.Reply(context.Background(), original.ID, uuid.New(), service.ReplyInput{Content: "x"})

	assert.Nil(t, reply)
	assert.ErrorIs(t, err, domain.ErrNotMessageParticipant)
}

func TestMessageService_GetByID_AdminReadsAny(t *testing.T) {
	svc, messageRepo, _, _ := newMessageService()

	msg := &domain.Message{ID: uuid.New(), FromUserID: uuid.New(), ToUserID: uuid.New()}
	messageRepo.On("GetByID", mock.Anything, msg.ID).Return(msg, nil)

	got, err := svc.GetByID(context.Background(), msg.ID, uuid.New(), domain.RoleAdmin)

	assert.NoError(t, err)
	assert.Equal(t, msg, got)
}

func TestMessageService_MarkRead_RecipientOnly(t *testing.T) {
	svc, messageRepo, _, _ := newMessageService()

	msg := &domain.Message{ID: uuid.New(), FromUserID: uuid.New(), ToUserID: uuid.New(), Status: domain.MessageStatusUnread}
	messageRepo.On("GetByID", mock.Anything, msg.ID).Return(msg, nil)

	err := svc.MarkRead(context.Background(), msg.ID, msg.FromUserID)

	assert.ErrorIs(t, err, domain.ErrForbidden)
}

func TestMessageService_MarkRead_AlreadyReadIsNoOp(t *testing.T) {
	svc, messageRepo, _, _ := newMessageService()

	msg := &domain.Message{ID: uuid.New(), ToUserID: uuid.New(), Status: domain.MessageStatusReplied}
	messageRepo.On("GetByID", mock.Anything, msg.ID).Return(msg, nil)

	err := svc.MarkRead(context.Background(), msg.ID, msg.ToUserID)

	assert.NoError(t, err)
	messageRepo.AssertNotCalled(t, "UpdateStatus", mock.Anything, mock.Anything, mock.Anything)
}

func TestMessageService_Delete_Participant(t *testing.T) {
	svc, messageRepo, _, _ := newMessageService()

	msg := &domain.Message{ID: uuid.New(), FromUserID: uuid.New(), ToUserID: uuid.New()}
	messageRepo.On("GetByID", mock.Anything, msg.ID).Return(msg, nil)
	messageRepo.On("Delete", mock.Anything, msg.ID).Return(nil)

	err := svc.Delete(context.Background(), msg.ID, msg.ToUserID, domain.RoleClient)

	assert.NoError(t, err)
}
