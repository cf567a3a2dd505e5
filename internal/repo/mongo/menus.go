package mongo

import (
	"context"
	"errors"

	"github.com/rasahub/rasahub/internal/domain/menu"
	"github.com/rasahub/rasahub/internal/observability"
	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/bson/primitive"
	driver "go.mongodb.org/mongo-driver/mongo"
)

var ErrBadMenuID = errors.New("malformed menu id")

type menuDoc struct {
	OID primitive.ObjectID `bson:"_id,omitempty"`
	menu.Menu `bson:",inline"`
}

type MenusRepo struct {
	col  *driver.Collection
	prom *observability.Prom
}

func NewMenusRepo(database *driver.Database, prom *observability.Prom) *MenusRepo {
	return &MenusRepo{
		col:  database.Collection("menus"),
		prom: prom,
	}
}

func (r *MenusRepo) observe(op string, fn func() error) error {
	if r.prom != nil {
		return r.prom.ObserveDB(op, fn)
	}
	return fn()
}

func (r *MenusRepo) List(ctx context.Context) ([]menu.Menu, error) {
	var items []menu.Menu

	err := r.observe("menus.list", func() error {
		cur, err := r.col.Find(ctx, bson.M{})

		if err != nil {
			return err
		}

		defer cur.Close(ctx)

		for cur.Next(ctx) {
			var doc menuDoc

			if err := cur.Decode(&doc); err != nil {
				return err
			}

			doc.Menu.ID = doc.OID.Hex()
			items = append(items, doc.Menu)
		}

		return cur.Err()
	})

	if err != nil {
		return nil, err
	}

	return items, nil
}

func (r *MenusRepo) GetByID(ctx context.Context, id string) (menu.Menu, error) {
	oid, err := primitive.ObjectIDFromHex(id)

	if err != nil {
		return menu.Menu{}, ErrBadMenuID
	}

	var doc menuDoc

	err = r.observe("menus.get_by_id", func() error {
		return r.col.FindOne(ctx, bson.M{"_id": oid}).Decode(&doc)
	})

	if err != nil {
		if errors.Is(err, driver.ErrNoDocuments) {
			return menu.Menu{}, menu.ErrNotFound
		}

		return menu.Menu{}, err
	}

	doc.Menu.ID = doc.OID.Hex()
	return doc.Menu, nil
}

func (r *MenusRepo) Insert(ctx context.Context, m menu.Menu) (string, error) {
	var res *driver.InsertOneResult

	err := r.observe("menus.insert", func() error {
		var insertErr error
		res, insertErr = r.col.InsertOne(ctx, menuDoc{Menu: m})
		return insertErr
	})

	if err != nil {
		return "", err
	}

	oid, ok := res.InsertedID.(primitive.ObjectID)

	if !ok {
		return "", errors.New("unexpected inserted id type")
	}

	return oid.Hex(), nil
}

// Update applies the form fields to one document. An empty Photo keeps the
// currently stored photo.
func (r *MenusRepo) Update(ctx context.Context, id string, m menu.Menu) error {
	oid, err := primitive.ObjectIDFromHex(id)

	if err != nil {
		return ErrBadMenuID
	}

	set := bson.M{
		"namamenu":      m.Name,
		"hargamenu":     m.Price,
		"deskripsimenu": m.Description,
		"kategorimenu":  m.Category,
	}

	if m.Photo != "" {
		set["fotomenu"] = m.Photo
	}

	var res *driver.UpdateResult

	err = r.observe("menus.update", func() error {
		var updErr error
		res, updErr = r.col.UpdateByID(ctx, oid, bson.M{"$set": set})
		return updErr
	})

	if err != nil {
		return err
	}

	if res.MatchedCount == 0 {
		return menu.ErrNotFound
	}

	return nil
}

func (r *MenusRepo) Delete(ctx context.Context, id string) error {
	oid, err := primitive.ObjectIDFromHex(id)

	if err != nil {
		return ErrBadMenuID
	}

	var res *driver.DeleteResult

	err = r.observe("menus.delete", func() error {
		var delErr error
		res, delErr = r.col.DeleteOne(ctx, bson.M{"_id": oid})
		return delErr
	})

	if err != nil {
		return err
	}

	if res.DeletedCount == 0 {
		return menu.ErrNotFound
	}

	return nil
}
