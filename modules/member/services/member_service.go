package services

import (
	"context"
	"strings"

	"github.com/google/uuid"

	"github.com/samajseva/trust-console/modules/member/domain/aggregates/member"
	"github.com/samajseva/trust-console/pkg/composables"
	"github.com/samajseva/trust-console/pkg/eventbus"
)

type MemberService struct {
	repo      member.Repository
	publisher eventbus.EventBus
}

func NewMemberService(repo member.Repository, publisher eventbus.EventBus) *MemberService {
	return &MemberService{
		repo:      repo,
		publisher: publisher,
	}
}

func (s *MemberService) GetPaginated(ctx context.Context, params *member.FindParams) ([]member.Member, int64, error) {
	if params != nil {
		params.Q = strings.TrimSpace(params.Q)
	}
	return s.repo.GetPaginated(ctx, params)
}

func (s *MemberService) GetByID(ctx context.Context, id uuid.UUID) (member.Member, error) {
	return s.repo.GetByID(ctx, id)
}

func (s *MemberService) Create(ctx context.Context, dto *member.CreateDTO) (member.Member, error) {
	var created member.Member
	err := composables.InTx(ctx, func(txCtx context.Context) error {
		entity, err := s.repo.Create(txCtx, member.New(dto.Fields()))
		if err != nil {
			return err
		}
		created = entity
		return nil
	})
	if err != nil {
		return member.Member{}, err
	}
	s.publisher.Publish(member.CreatedEvent{Result: created})
	return created, nil
}

func (s *MemberService) Update(ctx context.Context, id uuid.UUID, dto *member.CreateDTO) (member.Member, error) {
	var updated member.Member
	err := composables.InTx(ctx, func(txCtx context.Context) error {
		current, err := s.repo.GetByID(txCtx, id)
		if err != nil {
			return err
		}
		entity, err := s.repo.Update(txCtx, current.WithFields(dto.Fields()))
		if err != nil {
			return err
		}
		updated = entity
		return nil
	})
	if err != nil {
		return member.Member{}, err
	}
	s.publisher.Publish(member.UpdatedEvent{Result: updated})
	return updated, nil
}
