package migration

import (
	"context"
	"errors"
	"testing"

	"kympulse/database"
	professionalRepo "kympulse/database/repository/professional"
	serviceRepo "kympulse/database/repository/service"
	specialtyRepo "kympulse/database/repository/specialty"
	"kympulse/models"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type fixture struct {
	svc           *DefaultMigrationService
	professionals *professionalRepo.MemoryProfessionalRepo
	services      *serviceRepo.MemoryServiceRepo
	specialties   *specialtyRepo.MemorySpecialtyRepo
}

func newFixture(t *testing.T) *fixture {
	t.Helper()
	f := &fixture{
		professionals: professionalRepo.NewMemoryProfessionalRepo(),
		services:      serviceRepo.NewMemoryServiceRepo(),
		specialties: specialtyRepo.NewMemorySpecialtyRepo(
			models.Specialty{ID: "esp1", Name: "Osteopatía"},
			models.Specialty{ID: "esp2"},
		),
	}
	f.svc = &DefaultMigrationService{
		Professionals: f.professionals,
		Services:      f.services,
		Specialties:   f.specialties,
	}
	return f
}

func (f *fixture) addProfessional(t *testing.T, id string, services []interface{}, specialties ...interface{}) {
	t.Helper()
	require.NoError(t, f.professionals.Create(context.Background(), models.Professional{
		ID:             id,
		RawServices:    services,
		RawSpecialties: specialties,
	}))
}

func (f *fixture) addService(t *testing.T, id string, professionalIDs ...string) {
	t.Helper()
	require.NoError(t, f.services.Create(context.Background(), models.Service{ID: id, ProfessionalIDs: professionalIDs}))
}

func (f *fixture) linked(t *testing.T, serviceID string) []string {
	t.Helper()
	svc, err := f.services.GetByID(context.Background(), serviceID)
	require.NoError(t, err)
	return svc.ProfessionalIDs
}

func TestMigrateProfessionals_PipeDelimitedScenario(t *testing.T) {
	f := newFixture(t)
	f.addProfessional(t, "prof1", []interface{}{"Masajes|Relajante"})

	n, err := f.svc.MigrateProfessionals(context.Background())
	require.NoError(t, err)
	assert.Equal(t, 1, n)

	p, err := f.professionals.GetByID(context.Background(), "prof1")
	require.NoError(t, err)
	assert.Equal(t, []interface{}{
		map[string]interface{}{"category": "Masajes", "name": "Relajante", "serviceId": "Masajes|Relajante"},
	}, p.RawServices)
}

func TestMigrateProfessionals_MapsSpecialties(t *testing.T) {
	f := newFixture(t)
	f.addProfessional(t, "prof1", nil, "esp1", "esp2", "esp404")

	_, err := f.svc.MigrateProfessionals(context.Background())
	require.NoError(t, err)

	p, err := f.professionals.GetByID(context.Background(), "prof1")
	require.NoError(t, err)
	// esp2 has no nombre, esp404 is not in the lookup: both keep their ID.
	assert.Equal(t, []interface{}{"Osteopatía", "esp2", "esp404"}, p.RawSpecialties)
	assert.Empty(t, p.RawServices)
}

func TestMigrateProfessionals_RerunIsStable(t *testing.T) {
	f := newFixture(t)
	f.addProfessional(t, "prof1", []interface{}{
		"Masajes|Relajante",
		"Reflexología",
		map[string]interface{}{"category": "Fisio", "name": "Deportiva", "serviceId": "fisio-dep"},
		int64(3),
	}, "esp1")

	_, err := f.svc.MigrateProfessionals(context.Background())
	require.NoError(t, err)
	first, err := f.professionals.GetByID(context.Background(), "prof1")
	require.NoError(t, err)

	_, err = f.svc.MigrateProfessionals(context.Background())
	require.NoError(t, err)
	second, err := f.professionals.GetByID(context.Background(), "prof1")
	require.NoError(t, err)

	assert.Equal(t, first.RawServices, second.RawServices)
	assert.Equal(t, first.RawSpecialties, second.RawSpecialties)
}

func TestMigrateProfessionals_CountsEveryProfessional(t *testing.T) {
	f := newFixture(t)
	f.addProfessional(t, "prof1", []interface{}{"A|B"})
	f.addProfessional(t, "prof2", nil)
	f.addProfessional(t, "prof3", []interface{}{"C"})

	n, err := f.svc.MigrateProfessionals(context.Background())
	require.NoError(t, err)
	assert.Equal(t, 3, n)
}

func TestMigrateProfessionals_SpecialtyLookupFailure(t *testing.T) {
	f := newFixture(t)
	f.addProfessional(t, "prof1", []interface{}{"A|B"})
	f.specialties.FailWith(errors.New("unavailable"))

	n, err := f.svc.MigrateProfessionals(context.Background())
	require.Error(t, err)
	assert.Equal(t, 0, n)

	p, err := f.professionals.GetByID(context.Background(), "prof1")
	require.NoError(t, err)
	assert.Equal(t, []interface{}{"A|B"}, p.RawServices)
}

type failingProfessionalRepo struct {
	*professionalRepo.MemoryProfessionalRepo
	failOn string
}

func (r *failingProfessionalRepo) UpdateCatalogue(ctx context.Context, id string, update models.CatalogueUpdate) error {
	if id == r.failOn {
		return errors.New("write rejected")
	}
	return r.MemoryProfessionalRepo.UpdateCatalogue(ctx, id, update)
}

func TestMigrateProfessionals_PartialFailureKeepsEarlierWrites(t *testing.T) {
	f := newFixture(t)
	f.addProfessional(t, "prof1", []interface{}{"A|B"})
	f.addProfessional(t, "prof2", []interface{}{"C|D"})
	f.addProfessional(t, "prof3", []interface{}{"E|F"})
	f.svc.Professionals = &failingProfessionalRepo{MemoryProfessionalRepo: f.professionals, failOn: "prof2"}

	n, err := f.svc.MigrateProfessionals(context.Background())
	require.Error(t, err)
	assert.Contains(t, err.Error(), "write rejected")
	assert.Equal(t, 1, n)

	p1, _ := f.professionals.GetByID(context.Background(), "prof1")
	p3, _ := f.professionals.GetByID(context.Background(), "prof3")
	assert.IsType(t, map[string]interface{}{}, p1.RawServices[0])
	assert.Equal(t, []interface{}{"E|F"}, p3.RawServices)
}

func TestLinkServices_LinksExistingServices(t *testing.T) {
	f := newFixture(t)
	f.addService(t, "Masajes|Relajante")
	f.addService(t, "svc-dep")
	f.addProfessional(t, "prof1", []interface{}{
		map[string]interface{}{"category": "Masajes", "name": "Relajante", "serviceId": "Masajes|Relajante"},
		map[string]interface{}{"category": "Fisio", "name": "Deportiva", "serviceId": "svc-dep"},
		map[string]interface{}{"category": "Fisio", "name": "Suelo pélvico", "serviceId": "missing"},
		map[string]interface{}{"category": "Fisio", "name": "Sin id"},
	})
	f.addProfessional(t, "prof2", []interface{}{
		map[string]interface{}{"category": "Fisio", "name": "Deportiva", "serviceId": "svc-dep"},
	})

	n, err := f.svc.LinkServices(context.Background())
	require.NoError(t, err)
	assert.Equal(t, 3, n)
	assert.Equal(t, []string{"prof1"}, f.linked(t, "Masajes|Relajante"))
	assert.Equal(t, []string{"prof1", "prof2"}, f.linked(t, "svc-dep"))
}

func TestLinkServices_TwiceHasNoDuplicates(t *testing.T) {
	f := newFixture(t)
	f.addService(t, "svc-1", "prof0")
	f.addProfessional(t, "prof1", []interface{}{
		map[string]interface{}{"category": "Masajes", "name": "Relajante", "serviceId": "svc-1"},
		map[string]interface{}{"category": "Masajes", "name": "Relajante (dup)", "serviceId": "svc-1"},
	})

	first, err := f.svc.LinkServices(context.Background())
	require.NoError(t, err)
	second, err := f.svc.LinkServices(context.Background())
	require.NoError(t, err)

	assert.Equal(t, 1, first)
	assert.Equal(t, 0, second)
	assert.Equal(t, []string{"prof0", "prof1"}, f.linked(t, "svc-1"))
}

func TestLinkServices_UsesNormalizedView(t *testing.T) {
	f := newFixture(t)
	f.addService(t, "Masajes|Relajante")
	f.addService(t, "Reflexología")
	// Not migrated yet: strings still resolve to their service IDs.
	f.addProfessional(t, "prof1", []interface{}{"Masajes|Relajante", "Reflexología", int64(9)})

	n, err := f.svc.LinkServices(context.Background())
	require.NoError(t, err)
	assert.Equal(t, 2, n)
}

func TestMigrateThenLink_EveryReferenceIsLinked(t *testing.T) {
	f := newFixture(t)
	f.addService(t, "Masajes|Relajante")
	f.addService(t, "Masajes|Descontracturante", "stale")
	f.addProfessional(t, "prof1", []interface{}{"Masajes|Relajante", "Masajes|Descontracturante"})
	f.addProfessional(t, "prof2", []interface{}{"Masajes|Relajante"})

	ctx := context.Background()
	_, err := f.svc.ResetLinks(ctx)
	require.NoError(t, err)
	_, err = f.svc.MigrateProfessionals(ctx)
	require.NoError(t, err)
	_, err = f.svc.LinkServices(ctx)
	require.NoError(t, err)

	assert.ElementsMatch(t, []string{"prof1", "prof2"}, f.linked(t, "Masajes|Relajante"))
	assert.ElementsMatch(t, []string{"prof1"}, f.linked(t, "Masajes|Descontracturante"))
}

func TestResetLinks_ClearsOnlyNonEmpty(t *testing.T) {
	f := newFixture(t)
	f.addService(t, "svc-1", "prof1", "prof2")
	f.addService(t, "svc-2")
	f.addService(t, "svc-3", "prof3")

	n, err := f.svc.ResetLinks(context.Background())
	require.NoError(t, err)
	assert.Equal(t, 2, n)
	assert.Equal(t, 2, f.services.Writes())
	assert.Empty(t, f.linked(t, "svc-1"))
	assert.Empty(t, f.linked(t, "svc-3"))
}

func TestResetLinks_EmptyServiceDoesNotCount(t *testing.T) {
	f := newFixture(t)
	f.addService(t, "svc-1")

	n, err := f.svc.ResetLinks(context.Background())
	require.NoError(t, err)
	assert.Equal(t, 0, n)
	assert.Equal(t, 0, f.services.Writes())
}

func TestPasses_StopOnCancelledContext(t *testing.T) {
	f := newFixture(t)
	f.addService(t, "svc-1", "prof1")
	f.addProfessional(t, "prof1", []interface{}{"A|B"})

	ctx, cancel := context.WithCancel(context.Background())
	cancel()

	_, err := f.svc.ResetLinks(ctx)
	assert.ErrorIs(t, err, context.Canceled)
	_, err = f.svc.MigrateProfessionals(ctx)
	assert.ErrorIs(t, err, context.Canceled)
}

func TestMigrateProfessionals_NonListFieldAbortsPass(t *testing.T) {
	f := newFixture(t)
	f.addProfessional(t, "prof1", []interface{}{"A|B"})
	legacy := map[string]interface{}{"servicios": "Masajes|Relajante", "especialidades": "esp1"}
	f.professionals.PutRaw("prof2", legacy)

	n, err := f.svc.MigrateProfessionals(context.Background())
	require.Error(t, err)
	assert.ErrorIs(t, err, database.ErrNotList)
	assert.Contains(t, err.Error(), "professional prof2: servicios")
	assert.Equal(t, 1, n)

	// The unreadable record is left exactly as stored.
	assert.Equal(t, legacy, f.professionals.Raw("prof2"))
}

func TestMigrateProfessionals_MissingFieldsBecomeEmptyLists(t *testing.T) {
	f := newFixture(t)
	f.professionals.PutRaw("prof1", map[string]interface{}{"nombre": "Ana", "especialidades": nil})

	n, err := f.svc.MigrateProfessionals(context.Background())
	require.NoError(t, err)
	assert.Equal(t, 1, n)

	raw := f.professionals.Raw("prof1")
	assert.Equal(t, []interface{}{}, raw["servicios"])
	assert.Equal(t, []interface{}{}, raw["especialidades"])
	assert.Equal(t, "Ana", raw["nombre"])
}

func TestLinkServices_NonListFieldAbortsPass(t *testing.T) {
	f := newFixture(t)
	f.addService(t, "svc-1")
	f.professionals.PutRaw("prof1", map[string]interface{}{"servicios": map[string]interface{}{"serviceId": "svc-1"}})

	_, err := f.svc.LinkServices(context.Background())
	assert.ErrorIs(t, err, database.ErrNotList)
	assert.Empty(t, f.linked(t, "svc-1"))
}
