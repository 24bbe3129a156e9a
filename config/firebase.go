package config

// Collection names in the production database. Mongo deployments reuse them.
const (
	CollectionMassages      = "masajes"
	CollectionProfessionals = "profesionales"
	CollectionServices      = "services"
	CollectionSpecialties   = "especialidades"
)

// Store drivers accepted by STORE_DRIVER.
const (
	StoreFirestore = "firestore"
	StoreMongo     = "mongo"
	StoreMemory    = "memory"
)
