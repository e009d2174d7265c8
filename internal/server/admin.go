package server

import (
	"context"
	"strings"
	"time"

	"log/slog"

	v1 "github.com/dibiaa/fms-tracker/gen/proto/fms/v1"
	"github.com/dibiaa/fms-tracker/internal/common"
	"github.com/dibiaa/fms-tracker/internal/entity"
	"github.com/dibiaa/fms-tracker/internal/repository"
)

type AdminService struct {
	v1.UnimplementedAdminServiceServer
	usersRepo   repository.UserRepository
	holidayRepo repository.HolidayRepository
	plansRepo   repository.EmployeePlanRepository
	logger      *slog.Logger
}

func NewAdminService(usersRepo repository.UserRepository, holidayRepo repository.HolidayRepository, plansRepo repository.EmployeePlanRepository, logger *slog.Logger) *AdminService {
	return &AdminService{usersRepo: usersRepo, holidayRepo: holidayRepo, plansRepo: plansRepo, logger: logger}
}

func (s *AdminService) UpsertUser(ctx context.Context, req *v1.UpsertUserRequest) (*v1.UpsertUserResponse, error) {
	if strings.TrimSpace(req.GetName()) == "" {
		return nil, common.InvalidArgumentError("name is required")
	}
	email := strings.TrimSpace(req.GetEmail())
	if email == "" {
		return nil, common.InvalidArgumentError("email is required")
	}

	saved, err := s.usersRepo.Upsert(ctx, entity.User{
		Name:       req.GetName(),
		Role:       req.GetRole(),
		Department: req.GetDepartment(),
		Email:      email,
		Mobile:     req.GetMobile(),
	})
	if err != nil {
		return nil, common.InternalError("upsert user failed")
	}
	return &v1.UpsertUserResponse{User: userToProto(saved)}, nil
}

func (s *AdminService) ListUsers(ctx context.Context, _ *v1.ListUsersRequest) (*v1.ListUsersResponse, error) {
	users, err := s.usersRepo.List(ctx)
	if err != nil {
		return nil, common.InternalError("list users failed")
	}
	out := make([]*v1.User, 0, len(users))
	for i := range users {
		out = append(out, userToProto(&users[i]))
	}
	return &v1.ListUsersResponse{Users: out}, nil
}

func (s *AdminService) AddHoliday(ctx context.Context, req *v1.AddHolidayRequest) (*v1.AddHolidayResponse, error) {
	date, err := time.Parse("2006-01-02", req.GetDate())
	if err != nil {
		return nil, common.InvalidArgumentErrorf("invalid date %q", req.GetDate())
	}
	if strings.TrimSpace(req.GetName()) == "" {
		return nil, common.InvalidArgumentError("name is required")
	}

	if err := s.holidayRepo.Add(ctx, date, req.GetName()); err != nil {
		return nil, common.InternalError("add holiday failed")
	}
	s.logger.Info("holiday.add.ok", "date", req.GetDate(), "name", req.GetName())
	return &v1.AddHolidayResponse{}, nil
}

func (s *AdminService) SaveEmployeePlan(ctx context.Context, req *v1.SaveEmployeePlanRequest) (*v1.SaveEmployeePlanResponse, error) {
	plan := req.GetPlan()
	if plan == nil {
		return nil, common.InvalidArgumentError("plan is required")
	}
	email := strings.TrimSpace(plan.GetEmployeeEmail())
	if email == "" {
		return nil, common.InvalidArgumentError("employee_email is required")
	}
	day, err := time.Parse("2006-01-02", plan.GetPlanDate())
	if err != nil {
		return nil, common.InvalidArgumentErrorf("invalid plan_date %q", plan.GetPlanDate())
	}
	if plan.GetPlannedCount() < 0 {
		return nil, common.InvalidArgumentError("planned_count must not be negative")
	}

	err = s.plansRepo.Save(ctx, entity.EmployeePlan{
		EmployeeEmail: email,
		PlanDate:      day,
		PlannedCount:  int(plan.GetPlannedCount()),
	})
	if err != nil {
		return nil, common.InternalError("save employee plan failed")
	}
	return &v1.SaveEmployeePlanResponse{}, nil
}

func (s *AdminService) ListEmployeePlans(ctx context.Context, req *v1.ListEmployeePlansRequest) (*v1.ListEmployeePlansResponse, error) {
	from, err := time.Parse("2006-01-02", req.GetFromDate())
	if err != nil {
		return nil, common.InvalidArgumentErrorf("invalid from_date %q", req.GetFromDate())
	}
	to, err := time.Parse("2006-01-02", req.GetToDate())
	if err != nil {
		return nil, common.InvalidArgumentErrorf("invalid to_date %q", req.GetToDate())
	}

	plans, err := s.plansRepo.ListRange(ctx, from, to)
	if err != nil {
		return nil, common.InternalError("list employee plans failed")
	}
	out := make([]*v1.EmployeePlan, 0, len(plans))
	for _, plan := range plans {
		out = append(out, &v1.EmployeePlan{
			EmployeeEmail: plan.EmployeeEmail,
			PlanDate:      plan.PlanDate.Format("2006-01-02"),
			PlannedCount:  int32(plan.PlannedCount),
		})
	}
	return &v1.ListEmployeePlansResponse{Plans: out}, nil
}

func userToProto(u *entity.User) *v1.User {
	return &v1.User{
		Id:         u.ID.String(),
		Name:       u.Name,
		Role:       u.Role,
		Department: u.Department,
		Email:      u.Email,
		Mobile:     u.Mobile,
	}
}
