package service_test

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/nasir9967/skillbazaar/internal/domain"
	"github.com/nasir9967/skillbazaar/internal/service"
)

func seedBusiness(t *testing.T, users *fakeUsers, name, email string) *domain.User {
	t.Helper()
	u := &domain.User{Name: name, Email: email, Role: domain.RoleBusiness}
	require.NoError(t, users.Create(context.Background(), u))
	return u
}

func validSkill(title string) service.SkillInput {
	return service.SkillInput{
		Title:       title,
		Description: "deep cleaning for homes",
		Price:       500,
		Category:    "cleaning",
		Location:    "Patna",
		Tags:        []string{"home", "deep-clean"},
	}
}

func TestSkillCreateStampsOwner(t *testing.T) {
	users := newFakeUsers()
	owner := seedBusiness(t, users, "Ravi", "ravi@biz.in")
	svc := service.NewSkillSvc(newFakeSkills(), users, noopCache{})

	sk, err := svc.Create(context.Background(), owner.ID, validSkill("Home Cleaning"))
	require.NoError(t, err)
	assert.Equal(t, owner.ID, sk.BusinessID)
	assert.Equal(t, "Ravi", sk.BusinessName)
	assert.Equal(t, "ravi@biz.in", sk.BusinessEmail)
	assert.True(t, sk.Active)
}

func TestSkillCreateValidation(t *testing.T) {
	users := newFakeUsers()
	owner := seedBusiness(t, users, "Ravi", "ravi@biz.in")
	svc := service.NewSkillSvc(newFakeSkills(), users, noopCache{})
	ctx := context.Background()

	in := validSkill("ok")
	in.Title = ""
	_, err := svc.Create(ctx, owner.ID, in)
	assert.ErrorIs(t, err, service.ErrValidation)

	in = validSkill("ok")
	in.Price = 0
	_, err = svc.Create(ctx, owner.ID, in)
	assert.ErrorIs(t, err, service.ErrValidation)
}

func TestSkillMineScopedAndOrdered(t *testing.T) {
	users := newFakeUsers()
	skills := newFakeSkills()
	a := seedBusiness(t, users, "A", "a@biz.in")
	b := seedBusiness(t, users, "B", "b@biz.in")
	svc := service.NewSkillSvc(skills, users, noopCache{})
	ctx := context.Background()

	_, err := svc.Create(ctx, a.ID, validSkill("first"))
	require.NoError(t, err)
	_, err = svc.Create(ctx, b.ID, validSkill("other"))
	require.NoError(t, err)
	_, err = svc.Create(ctx, a.ID, validSkill("second"))
	require.NoError(t, err)

	mine, err := svc.Mine(ctx, a.ID)
	require.NoError(t, err)
	require.Len(t, mine, 2)
	assert.Equal(t, "second", mine[0].Title) // newest first
	assert.Equal(t, "first", mine[1].Title)
	for _, s := range mine {
		assert.Equal(t, a.ID, s.BusinessID)
	}
}

func TestSkillMutationOwnership(t *testing.T) {
	users := newFakeUsers()
	skills := newFakeSkills()
	owner := seedBusiness(t, users, "Owner", "o@biz.in")
	other := seedBusiness(t, users, "Other", "x@biz.in")
	svc := service.NewSkillSvc(skills, users, noopCache{})
	ctx := context.Background()

	sk, err := svc.Create(ctx, owner.ID, validSkill("target"))
	require.NoError(t, err)

	_, err = svc.Update(ctx, sk.ID, other.ID, validSkill("hijacked"))
	assert.ErrorIs(t, err, service.ErrForbidden)

	err = svc.Delete(ctx, sk.ID, other.ID)
	assert.ErrorIs(t, err, service.ErrForbidden)

	upd := validSkill("renamed")
	got, err := svc.Update(ctx, sk.ID, owner.ID, upd)
	require.NoError(t, err)
	assert.Equal(t, "renamed", got.Title)

	require.NoError(t, svc.Delete(ctx, sk.ID, owner.ID))
	err = svc.Delete(ctx, sk.ID, owner.ID)
	assert.ErrorIs(t, err, service.ErrNotFound)
}
