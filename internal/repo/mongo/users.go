package mongo

import (
	"context"
	"errors"

	"github.com/rasahub/rasahub/internal/domain/user"
	"github.com/rasahub/rasahub/internal/observability"
	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/bson/primitive"
	driver "go.mongodb.org/mongo-driver/mongo"
)

var (
	ErrUserNotFound = errors.New("user not found")
	ErrEmailTaken   = errors.New("email already registered")
	ErrBadUserID    = errors.New("malformed user id")
)

// userDoc pairs the domain fields with the store-assigned ObjectID.
type userDoc struct {
	OID primitive.ObjectID `bson:"_id,omitempty"`
	user.User `bson:",inline"`
}

type UsersRepo struct {
	col  *driver.Collection
	prom *observability.Prom
}

func NewUsersRepo(database *driver.Database, prom *observability.Prom) *UsersRepo {
	return &UsersRepo{
		col:  database.Collection("users"),
		prom: prom,
	}
}

func (r *UsersRepo) observe(op string, fn func() error) error {
	if r.prom != nil {
		return r.prom.ObserveDB(op, fn)
	}
	return fn()
}

func (r *UsersRepo) GetByEmail(ctx context.Context, email string) (user.User, error) {
	var doc userDoc

	err := r.observe("users.get_by_email", func() error {
		return r.col.FindOne(ctx, bson.M{"email": email}).Decode(&doc)
	})

	if err != nil {
		if errors.Is(err, driver.ErrNoDocuments) {
			return user.User{}, ErrUserNotFound
		}

		return user.User{}, err
	}

	doc.User.ID = doc.OID.Hex()
	return doc.User, nil
}

func (r *UsersRepo) GetByID(ctx context.Context, id string) (user.User, error) {
	oid, err := primitive.ObjectIDFromHex(id)

	if err != nil {
		return user.User{}, ErrBadUserID
	}

	var doc userDoc

	err = r.observe("users.get_by_id", func() error {
		return r.col.FindOne(ctx, bson.M{"_id": oid}).Decode(&doc)
	})

	if err != nil {
		if errors.Is(err, driver.ErrNoDocuments) {
			return user.User{}, ErrUserNotFound
		}

		return user.User{}, err
	}

	doc.User.ID = doc.OID.Hex()
	return doc.User, nil
}

// Insert stores a new user and returns the assigned id. Duplicate emails
// surface as ErrEmailTaken (backed by the unique index).
func (r *UsersRepo) Insert(ctx context.Context, u user.User) (string, error) {
	var res *driver.InsertOneResult

	err := r.observe("users.insert", func() error {
		var insertErr error
		res, insertErr = r.col.InsertOne(ctx, userDoc{User: u})
		return insertErr
	})

	if err != nil {
		if driver.IsDuplicateKeyError(err) {
			return "", ErrEmailTaken
		}

		return "", err
	}

	oid, ok := res.InsertedID.(primitive.ObjectID)

	if !ok {
		return "", errors.New("unexpected inserted id type")
	}

	return oid.Hex(), nil
}

// UpdateProfile applies the editable profile fields to one document. An
// empty ProfilePhoto leaves the stored photo untouched.
func (r *UsersRepo) UpdateProfile(ctx context.Context, id string, upd user.ProfileUpdate) error {
	oid, err := primitive.ObjectIDFromHex(id)

	if err != nil {
		return ErrBadUserID
	}

	set := bson.M{
		"nama":   upd.Name,
		"email":  upd.Email,
		"notlp":  upd.Phone,
		"alamat": upd.Address,
	}

	if upd.ProfilePhoto != "" {
		set["fotoprofil"] = upd.ProfilePhoto
	}

	var res *driver.UpdateResult

	err = r.observe("users.update_profile", func() error {
		var updErr error
		res, updErr = r.col.UpdateByID(ctx, oid, bson.M{"$set": set})
		return updErr
	})

	if err != nil {
		return err
	}

	if res.MatchedCount == 0 {
		return ErrUserNotFound
	}

	return nil
}

// CountByRole tallies every stored user by role, unknown role strings
// included.
func (r *UsersRepo) CountByRole(ctx context.Context) (map[user.Role]int, error) {
	counts := make(map[user.Role]int)

	err := r.observe("users.count_by_role", func() error {
		cur, err := r.col.Find(ctx, bson.M{})

		if err != nil {
			return err
		}

		defer cur.Close(ctx)

		for cur.Next(ctx) {
			var doc userDoc

			if err := cur.Decode(&doc); err != nil {
				return err
			}

			counts[doc.Role]++
		}

		return cur.Err()
	})

	if err != nil {
		return nil, err
	}

	return counts, nil
}
