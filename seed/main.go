// Command seed loads sample specialties, professionals and services into the
// configured record store so the migration endpoints have legacy data to work on.
package main

import (
	"context"
	"fmt"
	"log"
	"math/rand"
	"time"

	"kympulse/config"
	"kympulse/database/repository"
	"kympulse/models"
)

func main() {
	config.LoadConfig()
	if config.AppConfig.StoreDriver == config.StoreMemory {
		log.Fatalf("seed: STORE_DRIVER=memory keeps nothing after exit, pick firestore or mongo")
	}

	repos, err := repository.New(config.AppConfig.StoreDriver)
	if err != nil {
		log.Fatalf("seed: %v", err)
	}

	ctx, cancel := context.WithTimeout(context.Background(), 30*time.Second)
	defer cancel()

	specialties := []models.Specialty{
		{ID: "esp-1", Name: "Deportivo"},
		{ID: "esp-2", Name: "Descontracturante"},
		{ID: "esp-3", Name: "Drenaje linfático"},
		// No name: maps to its own ID after migration.
		{ID: "esp-4"},
	}
	for _, s := range specialties {
		if err := repos.Specialties.Create(ctx, s); err != nil {
			log.Fatalf("seed: failed to insert specialty %s: %v", s.ID, err)
		}
	}

	// Legacy service identifiers, as old clients wrote them.
	catalogue := []string{
		"Masajes|Relajante",
		"Masajes|Descontracturante",
		"Estética|Limpieza facial",
		"Reflexología",
		"|Piedras calientes",
	}
	for _, id := range catalogue {
		if err := repos.Services.Create(ctx, models.Service{ID: id, ProfessionalIDs: []string{}}); err != nil {
			log.Fatalf("seed: failed to insert service %q: %v", id, err)
		}
	}

	r := rand.New(rand.NewSource(time.Now().UnixNano()))
	const professionals = 10
	for i := 1; i <= professionals; i++ {
		var servicios []interface{}
		for _, idx := range r.Perm(len(catalogue))[:1+r.Intn(3)] {
			servicios = append(servicios, catalogue[idx])
		}
		// Every third professional already carries a migrated entry.
		if i%3 == 0 {
			servicios = append(servicios, map[string]interface{}{
				"category":  "Masajes",
				"name":      "Relajante",
				"serviceId": "Masajes|Relajante",
			})
		}
		// And one carries garbage.
		if i == professionals {
			servicios = append(servicios, 42)
		}

		especialidades := []interface{}{specialties[r.Intn(len(specialties))].ID, "esp-desconocida"}

		p := models.Professional{
			ID:             fmt.Sprintf("prof-%d", i),
			RawServices:    servicios,
			RawSpecialties: especialidades,
		}
		if err := repos.Professionals.Create(ctx, p); err != nil {
			log.Fatalf("seed: failed to insert professional %s: %v", p.ID, err)
		}
	}

	fmt.Printf("Inserted %d specialties, %d services and %d professionals into %s\n",
		len(specialties), len(catalogue), professionals, config.AppConfig.StoreDriver)
}
