package services

import (
	"context"
	"errors"
	"testing"

	"github.com/google/uuid"
	"smartinclusion/internal/models/db_models"
	"smartinclusion/internal/models/request_models"
	"smartinclusion/pkg/utils"
)

type fakeAccountRepo struct {
	accounts map[uuid.UUID]*db_models.Account
}

func newFakeAccountRepo() *fakeAccountRepo {
	return &fakeAccountRepo{accounts: make(map[uuid.UUID]*db_models.Account)}
}

func (f *fakeAccountRepo) Insert(ctx context.Context, account *db_models.Account) error {
	if account.ID == uuid.Nil {
		account.ID = uuid.New()
	}
	cp := *account
	f.accounts[account.ID] = &cp
	return nil
}

func (f *fakeAccountRepo) Update(ctx context.Context, account *db_models.Account) error {
	cp := *account
	f.accounts[account.ID] = &cp
	return nil
}

func (f *fakeAccountRepo) FindByEmail(ctx context.Context, email string) (*db_models.Account, error) {
	for _, a := range f.accounts {
		if a.Email == email {
			cp := *a
			return &cp, nil
		}
	}
	return nil, nil
}

func (f *fakeAccountRepo) FindByEmailAndRole(ctx context.Context, email, role string) (*db_models.Account, error) {
	for _, a := range f.accounts {
		if a.Email == email && a.Role == role {
			cp := *a
			return &cp, nil
		}
	}
	return nil, nil
}

func (f *fakeAccountRepo) FindByIDAndRole(ctx context.Context, id uuid.UUID, role string) (*db_models.Account, error) {
	if a, ok := f.accounts[id]; ok && a.Role == role {
		cp := *a
		return &cp, nil
	}
	return nil, nil
}

func userRegistration() request_models.RegisterRequest {
	return request_models.RegisterRequest{
		FullName:          "Uma User",
		Email:             "u@x.com",
		Phone:             "5550001",
		Password:          "secret123",
		AccessibilityNeed: db_models.NeedMobility,
	}
}

func volunteerRegistration() request_models.RegisterRequest {
	return request_models.RegisterRequest{
		FullName: "Vera Volunteer",
		Email:    "v@x.com",
		Phone:    "5550002",
		Password: "secret123",
	}
}

func TestRegister_DuplicateEmailAcrossRoles(t *testing.T) {
	ctx := context.Background()

	// user first, volunteer second
	repo := newFakeAccountRepo()
	svc := NewAccountService(repo, "test-secret")

	if err := svc.Register(ctx, db_models.RoleUser, userRegistration()); err != nil {
		t.Fatalf("register user: unexpected error: %v", err)
	}
	vol := volunteerRegistration()
	vol.Email = "u@x.com"
	if err := svc.Register(ctx, db_models.RoleVolunteer, vol); !errors.Is(err, utils.ErrDuplicateEmail) {
		t.Fatalf("expected ErrDuplicateEmail, got %v", err)
	}

	// volunteer first, user second
	repo = newFakeAccountRepo()
	svc = NewAccountService(repo, "test-secret")

	if err := svc.Register(ctx, db_models.RoleVolunteer, volunteerRegistration()); err != nil {
		t.Fatalf("register volunteer: unexpected error: %v", err)
	}
	usr := userRegistration()
	usr.Email = "v@x.com"
	if err := svc.Register(ctx, db_models.RoleUser, usr); !errors.Is(err, utils.ErrDuplicateEmail) {
		t.Fatalf("expected ErrDuplicateEmail, got %v", err)
	}
}

func TestRegister_Validation(t *testing.T) {
	ctx := context.Background()
	svc := NewAccountService(newFakeAccountRepo(), "test-secret")

	req := userRegistration()
	req.AccessibilityNeed = ""
	if err := svc.Register(ctx, db_models.RoleUser, req); !errors.Is(err, utils.ErrValidation) {
		t.Fatalf("expected ErrValidation for missing need, got %v", err)
	}

	req = userRegistration()
	req.AccessibilityNeed = db_models.NeedOther
	req.NeedDetail = ""
	if err := svc.Register(ctx, db_models.RoleUser, req); !errors.Is(err, utils.ErrValidation) {
		t.Fatalf("expected ErrValidation for other-need without detail, got %v", err)
	}

	req.NeedDetail = "chronic fatigue"
	if err := svc.Register(ctx, db_models.RoleUser, req); err != nil {
		t.Fatalf("register with detail: unexpected error: %v", err)
	}
}

func TestRegister_HashesPassword(t *testing.T) {
	ctx := context.Background()
	repo := newFakeAccountRepo()
	svc := NewAccountService(repo, "test-secret")

	if err := svc.Register(ctx, db_models.RoleUser, userRegistration()); err != nil {
		t.Fatalf("register: unexpected error: %v", err)
	}

	stored, err := repo.FindByEmail(ctx, "u@x.com")
	if err != nil || stored == nil {
		t.Fatalf("expected stored account, got %v / %v", stored, err)
	}
	if stored.PasswordHash == "secret123" || stored.PasswordHash == "" {
		t.Fatalf("password stored without hashing: %q", stored.PasswordHash)
	}
	if err := utils.ComparePasswords(stored.PasswordHash, "secret123"); err != nil {
		t.Fatalf("hash does not verify: %v", err)
	}
}

func TestLogin_IndistinguishableFailures(t *testing.T) {
	ctx := context.Background()
	repo := newFakeAccountRepo()
	svc := NewAccountService(repo, "test-secret")

	if err := svc.Register(ctx, db_models.RoleUser, userRegistration()); err != nil {
		t.Fatalf("register: unexpected error: %v", err)
	}

	_, errUnknown := svc.Login(ctx, request_models.LoginRequest{
		Email: "nobody@x.com", Password: "secret123", LoginAs: db_models.RoleUser,
	})
	_, errWrongPw := svc.Login(ctx, request_models.LoginRequest{
		Email: "u@x.com", Password: "wrong-password", LoginAs: db_models.RoleUser,
	})
	_, errWrongRole := svc.Login(ctx, request_models.LoginRequest{
		Email: "u@x.com", Password: "secret123", LoginAs: db_models.RoleVolunteer,
	})

	for name, err := range map[string]error{
		"unknown email": errUnknown,
		"wrong pw":      errWrongPw,
		"wrong role":    errWrongRole,
	} {
		if !errors.Is(err, utils.ErrInvalidCredentials) {
			t.Fatalf("%s: expected ErrInvalidCredentials, got %v", name, err)
		}
	}
	if errUnknown.Error() != errWrongPw.Error() {
		t.Fatalf("failure responses must be indistinguishable: %q vs %q", errUnknown, errWrongPw)
	}
}

func TestLogin_Success(t *testing.T) {
	ctx := context.Background()
	repo := newFakeAccountRepo()
	svc := NewAccountService(repo, "test-secret")

	if err := svc.Register(ctx, db_models.RoleUser, userRegistration()); err != nil {
		t.Fatalf("register: unexpected error: %v", err)
	}

	resp, err := svc.Login(ctx, request_models.LoginRequest{
		Email: "u@x.com", Password: "secret123", LoginAs: db_models.RoleUser,
	})
	if err != nil {
		t.Fatalf("login: unexpected error: %v", err)
	}
	if resp.Token == "" {
		t.Fatal("login: expected token, got empty string")
	}

	claims, err := utils.ValidateToken("test-secret", resp.Token)
	if err != nil {
		t.Fatalf("validate token: %v", err)
	}
	if claims.Role != db_models.RoleUser {
		t.Fatalf("expected role %s got %s", db_models.RoleUser, claims.Role)
	}
	if claims.AccountID != resp.User.ID {
		t.Fatalf("token account id %q does not match profile id %q", claims.AccountID, resp.User.ID)
	}
	if resp.User.FullName != "Uma User" || resp.User.AccessibilityNeed != db_models.NeedMobility {
		t.Fatalf("unexpected profile projection: %+v", resp.User)
	}
}

func TestUpdateProfile(t *testing.T) {
	ctx := context.Background()
	repo := newFakeAccountRepo()
	svc := NewAccountService(repo, "test-secret")

	if err := svc.Register(ctx, db_models.RoleUser, userRegistration()); err != nil {
		t.Fatalf("register: unexpected error: %v", err)
	}
	stored, _ := repo.FindByEmail(ctx, "u@x.com")

	// caller id differs from the target id
	_, err := svc.UpdateProfile(ctx, uuid.New(), db_models.RoleUser, stored.ID, request_models.UpdateProfileRequest{Phone: "5559999"})
	if !errors.Is(err, utils.ErrForbidden) {
		t.Fatalf("expected ErrForbidden on id mismatch, got %v", err)
	}

	// unknown id
	missing := uuid.New()
	_, err = svc.UpdateProfile(ctx, missing, db_models.RoleUser, missing, request_models.UpdateProfileRequest{})
	if !errors.Is(err, utils.ErrNotFound) {
		t.Fatalf("expected ErrNotFound for unknown id, got %v", err)
	}

	// wrong role for an existing id
	_, err = svc.UpdateProfile(ctx, stored.ID, db_models.RoleVolunteer, stored.ID, request_models.UpdateProfileRequest{})
	if !errors.Is(err, utils.ErrNotFound) {
		t.Fatalf("expected ErrNotFound for role mismatch, got %v", err)
	}

	// happy path persists the patch
	updated, err := svc.UpdateProfile(ctx, stored.ID, db_models.RoleUser, stored.ID, request_models.UpdateProfileRequest{
		Phone:             "5559999",
		AccessibilityNeed: db_models.NeedVisual,
	})
	if err != nil {
		t.Fatalf("update: unexpected error: %v", err)
	}
	if updated.Phone != "5559999" || updated.AccessibilityNeed != db_models.NeedVisual {
		t.Fatalf("patch not applied: %+v", updated)
	}
	persisted, _ := repo.FindByIDAndRole(ctx, stored.ID, db_models.RoleUser)
	if persisted.Phone != "5559999" {
		t.Fatalf("patch not persisted: %+v", persisted)
	}
}
