package menu

import "errors"

var ErrNotFound = errors.New("menu not found")

type Menu struct {
	ID          string `bson:"-" json:"id"`
	Name        string `bson:"namamenu" json:"name"`
	Price       string `bson:"hargamenu" json:"price"`
	Description string `bson:"deskripsimenu" json:"description"`
	Category    string `bson:"kategorimenu" json:"category"`
	Photo       string `bson:"fotomenu,omitempty" json:"photo,omitempty"`
}

// UpsertMenuRequest is the form payload for adding or editing a menu item.
// Photo is handled separately because a missing upload keeps the old file.
type UpsertMenuRequest struct {
	Name        string `form:"namaMenu" binding:"required"`
	Price       string `form:"hargaMenu" binding:"required"`
	Description string `form:"deskripsiMenu" binding:"required"`
	Category    string `form:"kategoriMenu" binding:"required"`
}
