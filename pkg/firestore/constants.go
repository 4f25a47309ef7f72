package firestore

const (
	pathUsers = "users"
	pathNotes = "notes"

	fieldID        = "id"
	fieldOwnerID   = "owner_id"
	fieldCategory  = "category"
	fieldFavorite  = "is_favorite"
	fieldTags      = "tags"
	fieldCreatedAt = "created_at"
	fieldUpdatedAt = "updated_at"
)
