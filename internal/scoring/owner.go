package scoring

import "github.com/google/uuid"

// Owner says who a result belongs to: a known user or nobody.
// The zero value is Anonymous.
type Owner struct {
	userID uuid.UUID
	owned  bool
}

func Anonymous() Owner { return Owner{} }

func OwnedBy(userID uuid.UUID) Owner { return Owner{userID: userID, owned: true} }

// OwnerFromNullable maps a nullable column back to an Owner.
func OwnerFromNullable(userID *uuid.UUID) Owner {
	if userID == nil {
		return Anonymous()
	}
	return OwnedBy(*userID)
}

func (o Owner) UserID() (uuid.UUID, bool) { return o.userID, o.owned }

func (o Owner) IsAnonymous() bool { return !o.owned }

// Nullable is the column form of the owner.
func (o Owner) Nullable() *uuid.UUID {
	if !o.owned {
		return nil
	}
	id := o.userID
	return &id
}
