package impl

import (
	"context"
	"fmt"
	"log/slog"
	"strings"

	"lumea/internal/domain/entity"
	domainerrors "lumea/internal/domain/errors"
	"lumea/internal/domain/repository"
	"lumea/internal/domain/service"

	"github.com/google/uuid"
)

// The services in this package only talk to repository interfaces, so the
// tests run them against an in-memory store with transaction rollback
// semantics. State-based verification is what the replace-all and idempotency
// properties need; call-based mocks cannot express "nothing was persisted".

type fakeState struct {
	identities     map[uuid.UUID]*entity.Identity
	addresses      []*entity.Address
	profiles       map[uuid.UUID]*entity.ProviderProfile
	services       []*entity.ServiceOffering
	portfolios     []*entity.Portfolio
	certifications []*entity.Certification
	socialLinks    []*entity.SocialLink
	faqs           []*entity.FAQ
	hours          []*entity.OperatingHour
	favorites      []*entity.Favorite
	reviews        []*entity.Review
}

func newFakeState() *fakeState {
	return &fakeState{
		identities: make(map[uuid.UUID]*entity.Identity),
		profiles:   make(map[uuid.UUID]*entity.ProviderProfile),
	}
}

func (s *fakeState) clone() *fakeState {
	c := newFakeState()
	for id, identity := range s.identities {
		cp := *identity
		c.identities[id] = &cp
	}
	for id, profile := range s.profiles {
		cp := *profile
		c.profiles[id] = &cp
	}
	for _, a := range s.addresses {
		cp := *a
		c.addresses = append(c.addresses, &cp)
	}
	for _, v := range s.services {
		cp := *v
		c.services = append(c.services, &cp)
	}
	for _, p := range s.portfolios {
		cp := *p
		cp.Images = nil
		for _, img := range p.Images {
			imgCp := *img
			cp.Images = append(cp.Images, &imgCp)
		}
		c.portfolios = append(c.portfolios, &cp)
	}
	for _, v := range s.certifications {
		cp := *v
		c.certifications = append(c.certifications, &cp)
	}
	for _, v := range s.socialLinks {
		cp := *v
		c.socialLinks = append(c.socialLinks, &cp)
	}
	for _, v := range s.faqs {
		cp := *v
		c.faqs = append(c.faqs, &cp)
	}
	for _, v := range s.hours {
		cp := *v
		c.hours = append(c.hours, &cp)
	}
	for _, v := range s.favorites {
		cp := *v
		c.favorites = append(c.favorites, &cp)
	}
	for _, v := range s.reviews {
		cp := *v
		c.reviews = append(c.reviews, &cp)
	}

	return c
}

// fakeTxManager applies fn against a copy of the state and only publishes the
// copy on success, mirroring commit/rollback.
type fakeTxManager struct {
	state *fakeState
}

func newFakeTxManager() *fakeTxManager {
	return &fakeTxManager{state: newFakeState()}
}

func (m *fakeTxManager) Execute(_ context.Context, fn func(repository.RepositoryFactory) error) error {
	working := m.state.clone()
	if err := fn(&fakeFactory{state: working}); err != nil {
		return err
	}
	m.state = working

	return nil
}

type fakeFactory struct {
	state *fakeState
}

func (f *fakeFactory) IdentityRepo() repository.IdentityRepository {
	return &fakeIdentityRepo{state: f.state}
}

func (f *fakeFactory) AddressRepo() repository.AddressRepository {
	return &fakeAddressRepo{state: f.state}
}

func (f *fakeFactory) ProviderRepo() repository.ProviderRepository {
	return &fakeProviderRepo{state: f.state}
}

func (f *fakeFactory) CollectionRepo() repository.CollectionRepository {
	return &fakeCollectionRepo{state: f.state}
}

func (f *fakeFactory) EngagementRepo() repository.EngagementRepository {
	return &fakeEngagementRepo{state: f.state}
}

// --- identity repo ---

type fakeIdentityRepo struct {
	state *fakeState
}

func (r *fakeIdentityRepo) FindByID(_ context.Context, id uuid.UUID) (*entity.Identity, error) {
	identity, ok := r.state.identities[id]
	if !ok {
		return nil, repository.ErrIdentityNotFound
	}
	cp := *identity

	return &cp, nil
}

func (r *fakeIdentityRepo) FindByEmail(_ context.Context, email string) (*entity.Identity, error) {
	for _, identity := range r.state.identities {
		if identity.Email == email {
			cp := *identity

			return &cp, nil
		}
	}

	return nil, repository.ErrIdentityNotFound
}

func (r *fakeIdentityRepo) Create(_ context.Context, identity *entity.Identity) error {
	for _, existing := range r.state.identities {
		if existing.Email == identity.Email {
			return domainerrors.ErrDuplicateIdentity.WrapMessage("email already registered")
		}
	}
	identity.ID = uuid.New()
	cp := *identity
	r.state.identities[identity.ID] = &cp

	return nil
}

func (r *fakeIdentityRepo) Update(_ context.Context, identity *entity.Identity) error {
	if _, ok := r.state.identities[identity.ID]; !ok {
		return repository.ErrIdentityNotFound
	}
	cp := *identity
	r.state.identities[identity.ID] = &cp

	return nil
}

func (r *fakeIdentityRepo) AdvanceStep(_ context.Context, id uuid.UUID, step int) error {
	identity, ok := r.state.identities[id]
	if !ok {
		return repository.ErrIdentityNotFound
	}
	if step > identity.RegistrationStep {
		identity.RegistrationStep = step
	}

	return nil
}

func (r *fakeIdentityRepo) SetApproval(_ context.Context, id uuid.UUID, status entity.ApprovalStatus, message string, role entity.Role) error {
	identity, ok := r.state.identities[id]
	if !ok {
		return repository.ErrIdentityNotFound
	}
	identity.ApprovalStatus = status
	identity.ApprovalMessage = message
	if role != "" {
		identity.Role = role
	}

	return nil
}

func (r *fakeIdentityRepo) Deactivate(_ context.Context, id uuid.UUID) error {
	identity, ok := r.state.identities[id]
	if !ok {
		return repository.ErrIdentityNotFound
	}
	identity.Active = false

	return nil
}

func (r *fakeIdentityRepo) ListPendingApproval(_ context.Context) ([]*entity.Identity, error) {
	var pending []*entity.Identity
	for _, identity := range r.state.identities {
		if identity.Active && identity.ApprovalStatus == entity.ApprovalPending {
			cp := *identity
			pending = append(pending, &cp)
		}
	}

	return pending, nil
}

// --- address repo ---

type fakeAddressRepo struct {
	state *fakeState
}

func (r *fakeAddressRepo) Append(_ context.Context, address *entity.Address) error {
	address.ID = uuid.New()
	address.Active = true
	cp := *address
	r.state.addresses = append(r.state.addresses, &cp)

	return nil
}

func (r *fakeAddressRepo) FindActiveByOwner(_ context.Context, owner entity.OwnerRef) (*entity.Address, error) {
	for _, a := range r.state.addresses {
		if a.Active && a.Owner == owner {
			cp := *a

			return &cp, nil
		}
	}

	return nil, repository.ErrAddressNotFound
}

func (r *fakeAddressRepo) UpsertActive(ctx context.Context, address *entity.Address) error {
	for _, a := range r.state.addresses {
		if a.Active && a.Owner == address.Owner {
			a.Country = address.Country
			a.City = address.City
			a.Postcode = address.Postcode
			a.FullAddress = address.FullAddress
			address.ID = a.ID

			return nil
		}
	}

	return r.Append(ctx, address)
}

func (r *fakeAddressRepo) DeactivateByOwner(_ context.Context, owner entity.OwnerRef) error {
	for _, a := range r.state.addresses {
		if a.Owner == owner {
			a.Active = false
		}
	}

	return nil
}

// --- provider repo ---

type fakeProviderRepo struct {
	state *fakeState
}

func (r *fakeProviderRepo) FindByID(_ context.Context, id uuid.UUID) (*entity.ProviderProfile, error) {
	profile, ok := r.state.profiles[id]
	if !ok {
		return nil, repository.ErrProfileNotFound
	}
	cp := *profile

	return &cp, nil
}

func (r *fakeProviderRepo) FindActiveByOwner(_ context.Context, identityID uuid.UUID, profileType entity.ProviderType) (*entity.ProviderProfile, error) {
	for _, profile := range r.state.profiles {
		if profile.Active && profile.OwnerIdentityID == identityID && profile.Type == profileType {
			cp := *profile

			return &cp, nil
		}
	}

	return nil, repository.ErrProfileNotFound
}

func (r *fakeProviderRepo) FindOrCreate(_ context.Context, identityID uuid.UUID, profileType entity.ProviderType) (*entity.ProviderProfile, error) {
	for _, profile := range r.state.profiles {
		if profile.OwnerIdentityID == identityID && profile.Type == profileType {
			if !profile.Active {
				profile.Active = true
				profile.IsApproved = false
				profile.RegistrationStep = 1
			}
			cp := *profile

			return &cp, nil
		}
	}

	created := &entity.ProviderProfile{
		ID:               uuid.New(),
		OwnerIdentityID:  identityID,
		Type:             profileType,
		RegistrationStep: 1,
		Active:           true,
	}
	r.state.profiles[created.ID] = created
	cp := *created

	return &cp, nil
}

func (r *fakeProviderRepo) UpdateFields(_ context.Context, profileID uuid.UUID, update repository.ProfileUpdate) error {
	profile, ok := r.state.profiles[profileID]
	if !ok {
		return repository.ErrProfileNotFound
	}
	if update.Name != "" {
		profile.Name = update.Name
	}
	if update.ContactEmail != "" {
		profile.ContactEmail = update.ContactEmail
	}
	if update.Phone != "" {
		profile.Phone = update.Phone
	}
	if update.Description != "" {
		profile.Description = update.Description
	}
	if update.ImageURL != "" {
		profile.ImageURL = update.ImageURL
	}

	return nil
}

func (r *fakeProviderRepo) AdvanceStep(_ context.Context, profileID uuid.UUID, step int) error {
	profile, ok := r.state.profiles[profileID]
	if !ok {
		return repository.ErrProfileNotFound
	}
	if step > profile.RegistrationStep {
		profile.RegistrationStep = step
	}

	return nil
}

func (r *fakeProviderRepo) SetApprovalProjection(_ context.Context, profileID uuid.UUID, approved bool) error {
	profile, ok := r.state.profiles[profileID]
	if !ok {
		return repository.ErrProfileNotFound
	}
	profile.IsApproved = approved

	return nil
}

func (r *fakeProviderRepo) FindActiveByIdentity(_ context.Context, identityID uuid.UUID) ([]*entity.ProviderProfile, error) {
	var profiles []*entity.ProviderProfile
	for _, profile := range r.state.profiles {
		if profile.Active && profile.OwnerIdentityID == identityID {
			cp := *profile
			profiles = append(profiles, &cp)
		}
	}

	return profiles, nil
}

func (r *fakeProviderRepo) DeactivateByIdentity(_ context.Context, identityID uuid.UUID) error {
	for _, profile := range r.state.profiles {
		if profile.OwnerIdentityID == identityID {
			profile.Active = false
			profile.IsApproved = false
		}
	}

	return nil
}

func (r *fakeProviderRepo) ListApproved(_ context.Context, profileType entity.ProviderType, limit, offset int) ([]*entity.ProviderProfile, error) {
	var profiles []*entity.ProviderProfile
	for _, profile := range r.state.profiles {
		if !profile.Active || !profile.IsApproved {
			continue
		}
		if profileType != "" && profile.Type != profileType {
			continue
		}
		cp := *profile
		profiles = append(profiles, &cp)
	}
	if offset >= len(profiles) {
		return nil, nil
	}
	profiles = profiles[offset:]
	if limit > 0 && len(profiles) > limit {
		profiles = profiles[:limit]
	}

	return profiles, nil
}

// --- collection repo ---

type fakeCollectionRepo struct {
	state *fakeState
}

func (r *fakeCollectionRepo) ReassignOwner(_ context.Context, from, to entity.OwnerRef) error {
	for _, v := range r.state.services {
		if v.Owner == from {
			v.Owner = to
		}
	}
	for _, v := range r.state.portfolios {
		if v.Owner == from {
			v.Owner = to
		}
	}
	for _, v := range r.state.certifications {
		if v.Owner == from {
			v.Owner = to
		}
	}
	for _, v := range r.state.socialLinks {
		if v.Owner == from {
			v.Owner = to
		}
	}
	for _, v := range r.state.faqs {
		if v.Owner == from {
			v.Owner = to
		}
	}
	for _, v := range r.state.hours {
		if v.Owner == from {
			v.Owner = to
		}
	}

	return nil
}

func (r *fakeCollectionRepo) ReplaceServices(_ context.Context, owner entity.OwnerRef, items []*entity.ServiceOffering) error {
	kept := r.state.services[:0]
	for _, v := range r.state.services {
		if v.Owner != owner {
			kept = append(kept, v)
		}
	}
	r.state.services = kept
	for _, item := range items {
		if !item.Valid() {
			continue
		}
		cp := *item
		cp.ID = uuid.New()
		cp.Owner = owner
		cp.Position = len(r.state.services)
		r.state.services = append(r.state.services, &cp)
	}

	return nil
}

func (r *fakeCollectionRepo) FindServicesByOwner(_ context.Context, owner entity.OwnerRef) ([]*entity.ServiceOffering, error) {
	var items []*entity.ServiceOffering
	for _, v := range r.state.services {
		if v.Owner == owner {
			cp := *v
			items = append(items, &cp)
		}
	}

	return items, nil
}

func (r *fakeCollectionRepo) ReplacePortfolios(_ context.Context, owner entity.OwnerRef, items []*entity.Portfolio) error {
	kept := r.state.portfolios[:0]
	for _, v := range r.state.portfolios {
		if v.Owner != owner {
			kept = append(kept, v)
		}
	}
	r.state.portfolios = kept
	position := 0
	for _, item := range items {
		if !item.Valid() {
			continue
		}
		cp := *item
		cp.ID = uuid.New()
		cp.Owner = owner
		cp.Position = position
		position++
		cp.Images = nil
		for i, img := range item.Images {
			if img.ImageURL == "" {
				continue
			}
			cp.Images = append(cp.Images, &entity.PortfolioImage{
				ID:          uuid.New(),
				PortfolioID: cp.ID,
				ImageURL:    img.ImageURL,
				Position:    i,
			})
		}
		r.state.portfolios = append(r.state.portfolios, &cp)
	}

	return nil
}

func (r *fakeCollectionRepo) FindPortfoliosByOwner(_ context.Context, owner entity.OwnerRef) ([]*entity.Portfolio, error) {
	var items []*entity.Portfolio
	for _, v := range r.state.portfolios {
		if v.Owner == owner {
			cp := *v
			items = append(items, &cp)
		}
	}

	return items, nil
}

func (r *fakeCollectionRepo) ReplaceCertifications(_ context.Context, owner entity.OwnerRef, items []*entity.Certification) error {
	kept := r.state.certifications[:0]
	for _, v := range r.state.certifications {
		if v.Owner != owner {
			kept = append(kept, v)
		}
	}
	r.state.certifications = kept
	for _, item := range items {
		if !item.Valid() {
			continue
		}
		cp := *item
		cp.ID = uuid.New()
		cp.Owner = owner
		cp.Position = len(r.state.certifications)
		r.state.certifications = append(r.state.certifications, &cp)
	}

	return nil
}

func (r *fakeCollectionRepo) FindCertificationsByOwner(_ context.Context, owner entity.OwnerRef) ([]*entity.Certification, error) {
	var items []*entity.Certification
	for _, v := range r.state.certifications {
		if v.Owner == owner {
			cp := *v
			items = append(items, &cp)
		}
	}

	return items, nil
}

func (r *fakeCollectionRepo) ReplaceSocialLinks(_ context.Context, owner entity.OwnerRef, items []*entity.SocialLink) error {
	kept := r.state.socialLinks[:0]
	for _, v := range r.state.socialLinks {
		if v.Owner != owner {
			kept = append(kept, v)
		}
	}
	r.state.socialLinks = kept
	for _, item := range items {
		if !item.Valid() {
			continue
		}
		cp := *item
		cp.ID = uuid.New()
		cp.Owner = owner
		cp.Position = len(r.state.socialLinks)
		r.state.socialLinks = append(r.state.socialLinks, &cp)
	}

	return nil
}

func (r *fakeCollectionRepo) FindSocialLinksByOwner(_ context.Context, owner entity.OwnerRef) ([]*entity.SocialLink, error) {
	var items []*entity.SocialLink
	for _, v := range r.state.socialLinks {
		if v.Owner == owner {
			cp := *v
			items = append(items, &cp)
		}
	}

	return items, nil
}

func (r *fakeCollectionRepo) ReplaceFAQs(_ context.Context, owner entity.OwnerRef, items []*entity.FAQ) error {
	kept := r.state.faqs[:0]
	for _, v := range r.state.faqs {
		if v.Owner != owner {
			kept = append(kept, v)
		}
	}
	r.state.faqs = kept
	for _, item := range items {
		if !item.Valid() {
			continue
		}
		cp := *item
		cp.ID = uuid.New()
		cp.Owner = owner
		cp.Position = len(r.state.faqs)
		r.state.faqs = append(r.state.faqs, &cp)
	}

	return nil
}

func (r *fakeCollectionRepo) FindFAQsByOwner(_ context.Context, owner entity.OwnerRef) ([]*entity.FAQ, error) {
	var items []*entity.FAQ
	for _, v := range r.state.faqs {
		if v.Owner == owner {
			cp := *v
			items = append(items, &cp)
		}
	}

	return items, nil
}

func (r *fakeCollectionRepo) ReplaceOperatingHours(_ context.Context, owner entity.OwnerRef, items []*entity.OperatingHour) error {
	kept := r.state.hours[:0]
	for _, v := range r.state.hours {
		if v.Owner != owner {
			kept = append(kept, v)
		}
	}
	r.state.hours = kept
	for _, item := range items {
		if !item.Valid() {
			continue
		}
		cp := *item
		cp.ID = uuid.New()
		cp.Owner = owner
		cp.Position = len(r.state.hours)
		r.state.hours = append(r.state.hours, &cp)
	}

	return nil
}

func (r *fakeCollectionRepo) FindOperatingHoursByOwner(_ context.Context, owner entity.OwnerRef) ([]*entity.OperatingHour, error) {
	var items []*entity.OperatingHour
	for _, v := range r.state.hours {
		if v.Owner == owner {
			cp := *v
			items = append(items, &cp)
		}
	}

	return items, nil
}

// --- engagement repo ---

type fakeEngagementRepo struct {
	state *fakeState
}

func (r *fakeEngagementRepo) DeactivateFavoritesByIdentity(_ context.Context, identityID uuid.UUID) error {
	for _, f := range r.state.favorites {
		if f.IdentityID == identityID {
			f.Active = false
		}
	}

	return nil
}

func (r *fakeEngagementRepo) DeactivateReviewsByIdentity(_ context.Context, identityID uuid.UUID) error {
	for _, rv := range r.state.reviews {
		if rv.IdentityID == identityID {
			rv.Active = false
		}
	}

	return nil
}

// --- stateless service fakes ---

type fakePasswordHasher struct{}

func (fakePasswordHasher) Hash(password string) (string, error) {
	return "hashed:" + password, nil
}

func (fakePasswordHasher) Check(password, hash string) bool {
	return hash == "hashed:"+password
}

func (fakePasswordHasher) ValidatePasswordStrength(password string) error {
	if len(password) < 8 {
		return domainerrors.ErrPasswordStrength.WrapMessage("password must be at least 8 characters")
	}

	return nil
}

type fakeTokenService struct{}

func (fakeTokenService) GenerateToken(identityID uuid.UUID, role entity.Role) (string, error) {
	return fmt.Sprintf("token:%s:%s", identityID, role), nil
}

func (fakeTokenService) ValidateToken(tokenString string) (*service.Claims, error) {
	parts := strings.Split(tokenString, ":")
	if len(parts) != 3 || parts[0] != "token" {
		return nil, domainerrors.ErrInvalidCredentials
	}
	id, err := uuid.Parse(parts[1])
	if err != nil {
		return nil, domainerrors.ErrInvalidCredentials
	}

	return &service.Claims{IdentityID: id, Role: entity.Role(parts[2])}, nil
}

type fakeImageStorage struct {
	stored int
}

func (s *fakeImageStorage) Store(_ context.Context, _ []byte, _ string) (string, error) {
	s.stored++

	return fmt.Sprintf("https://cdn.test/images/%d", s.stored), nil
}

type fakeQRService struct{}

func (fakeQRService) GenerateListingQR(uuid.UUID) ([]byte, error) {
	return []byte{0x89, 'P', 'N', 'G'}, nil
}

func (fakeQRService) ParseListingQR(string) (uuid.UUID, error) {
	return uuid.Nil, nil
}

func testLogger() *slog.Logger {
	return slog.New(slog.DiscardHandler)
}
