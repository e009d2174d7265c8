package server

import (
	"context"
	"strings"
	"time"

	"log/slog"

	"github.com/google/uuid"

	"github.com/dibiaa/fms-tracker/constants"
	v1 "github.com/dibiaa/fms-tracker/gen/proto/fms/v1"
	"github.com/dibiaa/fms-tracker/internal/common"
	"github.com/dibiaa/fms-tracker/internal/entity"
	"github.com/dibiaa/fms-tracker/internal/repository"
)

type DelegationService struct {
	v1.UnimplementedDelegationServiceServer
	tasksRepo    repository.DelegationRepository
	commentsRepo repository.CommentRepository
	logger       *slog.Logger
}

func NewDelegationService(tasksRepo repository.DelegationRepository, commentsRepo repository.CommentRepository, logger *slog.Logger) *DelegationService {
	return &DelegationService{tasksRepo: tasksRepo, commentsRepo: commentsRepo, logger: logger}
}

func (s *DelegationService) CreateDelegationTask(ctx context.Context, req *v1.CreateDelegationTaskRequest) (*v1.DelegationTaskResponse, error) {
	if strings.TrimSpace(req.GetDescription()) == "" {
		return nil, common.InvalidArgumentError("description is required")
	}
	if strings.TrimSpace(req.GetAssignedToEmail()) == "" {
		return nil, common.InvalidArgumentError("assigned_to_email is required")
	}
	target, err := time.Parse("2006-01-02", req.GetTargetDate())
	if err != nil {
		return nil, common.InvalidArgumentErrorf("invalid target_date %q", req.GetTargetDate())
	}

	created, err := s.tasksRepo.Create(ctx, entity.DelegationTask{
		EmployeeName:    req.GetEmployeeName(),
		AssignedToEmail: req.GetAssignedToEmail(),
		ApproverEmail:   req.GetApproverEmail(),
		Description:     req.GetDescription(),
		TargetDate:      target,
		Priority:        req.GetPriority(),
		ApprovalNeeded:  req.GetApprovalNeeded(),
		AssignedBy:      req.GetAssignedBy(),
		Remarks:         req.GetRemarks(),
	})
	if err != nil {
		return nil, common.InternalError("create delegation task failed")
	}
	s.logger.Info("delegation.create.ok", "task_uid", created.TaskUID, "assignee", created.AssignedToEmail)
	return &v1.DelegationTaskResponse{Task: delegationToProto(created)}, nil
}

func (s *DelegationService) ListDelegationTasks(ctx context.Context, req *v1.ListDelegationTasksRequest) (*v1.ListDelegationTasksResponse, error) {
	var (
		tasks []entity.DelegationTask
		err   error
	)
	if approver := strings.TrimSpace(req.GetApproverEmail()); approver != "" {
		tasks, err = s.tasksRepo.ListForApprover(ctx, approver)
	} else {
		tasks, err = s.tasksRepo.ListForAssignee(ctx, strings.TrimSpace(req.GetAssigneeEmail()))
	}
	if err != nil {
		return nil, common.InternalError("list delegation tasks failed")
	}

	out := make([]*v1.DelegationTask, 0, len(tasks))
	for i := range tasks {
		out = append(out, delegationToProto(&tasks[i]))
	}
	return &v1.ListDelegationTasksResponse{Tasks: out}, nil
}

func (s *DelegationService) UpdateDelegationStatus(ctx context.Context, req *v1.UpdateDelegationStatusRequest) (*v1.DelegationTaskResponse, error) {
	taskID, err := uuid.Parse(strings.TrimSpace(req.GetTaskId()))
	if err != nil {
		return nil, common.InvalidArgumentError("task_id must be a UUID")
	}

	change := repository.StatusChange{
		TaskID:      taskID,
		Remarks:     req.GetRemarks(),
		IsRejection: req.GetRejection(),
	}
	if !change.IsRejection {
		requested := constants.DelegationStatus(req.GetStatus())
		if !validDelegationStatus(requested) {
			return nil, common.InvalidArgumentErrorf("unknown status %q", req.GetStatus())
		}
		change.Status = requested
	}
	if rd := strings.TrimSpace(req.GetRevisedDate()); rd != "" {
		parsed, err := time.Parse("2006-01-02", rd)
		if err != nil {
			return nil, common.InvalidArgumentErrorf("invalid revised_date %q", rd)
		}
		change.RevisedDate = &parsed
	}

	updated, err := s.tasksRepo.UpdateStatus(ctx, change)
	if err != nil {
		s.logger.Error("delegation status update failed", "task_id", taskID, "error", err)
		return nil, common.InternalError("update delegation status failed")
	}
	return &v1.DelegationTaskResponse{Task: delegationToProto(updated)}, nil
}

func (s *DelegationService) AddTaskComment(ctx context.Context, req *v1.AddTaskCommentRequest) (*v1.AddTaskCommentResponse, error) {
	taskID, err := uuid.Parse(strings.TrimSpace(req.GetTaskId()))
	if err != nil {
		return nil, common.InvalidArgumentError("task_id must be a UUID")
	}
	if strings.TrimSpace(req.GetComment()) == "" {
		return nil, common.InvalidArgumentError("comment is required")
	}
	if strings.TrimSpace(req.GetUserName()) == "" {
		return nil, common.InvalidArgumentError("user_name is required")
	}

	created, err := s.commentsRepo.Add(ctx, entity.TaskComment{
		TaskID:   taskID,
		UserName: req.GetUserName(),
		Comment:  req.GetComment(),
	})
	if err != nil {
		return nil, common.InternalError("add comment failed")
	}
	return &v1.AddTaskCommentResponse{Comment: commentToProto(created)}, nil
}

func (s *DelegationService) ListTaskComments(ctx context.Context, req *v1.ListTaskCommentsRequest) (*v1.ListTaskCommentsResponse, error) {
	taskID, err := uuid.Parse(strings.TrimSpace(req.GetTaskId()))
	if err != nil {
		return nil, common.InvalidArgumentError("task_id must be a UUID")
	}

	comments, err := s.commentsRepo.ListForTask(ctx, taskID)
	if err != nil {
		return nil, common.InternalError("list comments failed")
	}
	out := make([]*v1.TaskComment, 0, len(comments))
	for i := range comments {
		out = append(out, commentToProto(&comments[i]))
	}
	return &v1.ListTaskCommentsResponse{Comments: out}, nil
}

func validDelegationStatus(s constants.DelegationStatus) bool {
	for _, known := range constants.DelegationStatuses() {
		if string(s) == known {
			return true
		}
	}
	return false
}

func delegationToProto(t *entity.DelegationTask) *v1.DelegationTask {
	return &v1.DelegationTask{
		Id:                 t.ID.String(),
		TaskUid:            t.TaskUID,
		EmployeeName:       t.EmployeeName,
		AssignedToEmail:    t.AssignedToEmail,
		ApproverEmail:      t.ApproverEmail,
		Description:        t.Description,
		TargetDate:         t.TargetDate.Format("2006-01-02"),
		Priority:           t.Priority,
		ApprovalNeeded:     t.ApprovalNeeded,
		AssignedBy:         t.AssignedBy,
		Remarks:            t.Remarks,
		Status:             string(t.Status),
		RevisedDateRequest: formatDatePtr(t.RevisedDateReq),
		RevisionRemarks:    t.RevisionRemarks,
		CreatedAt:          formatTime(t.CreatedAt),
	}
}

func commentToProto(c *entity.TaskComment) *v1.TaskComment {
	return &v1.TaskComment{
		Id:        c.ID.String(),
		TaskId:    c.TaskID.String(),
		UserName:  c.UserName,
		Comment:   c.Comment,
		CreatedAt: formatTime(c.CreatedAt),
	}
}

func formatDatePtr(t *time.Time) string {
	if t == nil {
		return ""
	}
	return t.Format("2006-01-02")
}
