package domain

import "time"

type Role struct {
	ID   uint64 `json:"id" gorm:"primaryKey;autoIncrement"`
	Name string `json:"name" gorm:"size:255;uniqueIndex;not null"`
}

const (
	RoleAdmin    = "ADMIN"
	RoleCustomer = "CUSTOMER"
)

type Name struct {
	ID        uint64 `json:"id" gorm:"primaryKey;autoIncrement"`
	FirstName string `json:"first_name" gorm:"size:255;default:''"`
	LastName  string `json:"last_name" gorm:"size:255;not null"`
}

type City struct {
	ID   uint64 `json:"id" gorm:"primaryKey;autoIncrement"`
	Name string `json:"name" gorm:"size:255;not null"`
}

type District struct {
	ID     uint64 `json:"id" gorm:"primaryKey;autoIncrement"`
	Name   string `json:"name" gorm:"size:255;not null"`
	CityID uint64 `json:"city_id" gorm:"not null;index"`
	City   City   `json:"city" gorm:"foreignKey:CityID"`
}

type Ward struct {
	ID         uint64   `json:"id" gorm:"primaryKey;autoIncrement"`
	Name       string   `json:"name" gorm:"size:255;not null"`
	DistrictID uint64   `json:"district_id" gorm:"not null;index"`
	District   District `json:"district" gorm:"foreignKey:DistrictID"`
}

type Address struct {
	ID     uint64 `json:"id" gorm:"primaryKey;autoIncrement"`
	Detail string `json:"detail" gorm:"size:255;not null"`
	WardID uint64 `json:"ward_id" gorm:"not null;index"`
	Ward   Ward   `json:"ward" gorm:"foreignKey:WardID"`
}

type User struct {
	ID           uint64    `json:"id" gorm:"primaryKey;autoIncrement"`
	Username     string    `json:"username" gorm:"size:255;uniqueIndex;not null"`
	PasswordHash string    `json:"-" gorm:"size:255;not null"`
	Email        string    `json:"email" gorm:"size:255;uniqueIndex;not null"`
	PhoneNumber  string    `json:"phone_number" gorm:"size:255"`
	NameID       uint64    `json:"-" gorm:"not null"`
	Name         Name      `json:"name" gorm:"foreignKey:NameID"`
	AddressID    *uint64   `json:"-"`
	Address      *Address  `json:"address,omitempty" gorm:"foreignKey:AddressID"`
	RoleID       uint64    `json:"-" gorm:"not null"`
	Role         Role      `json:"role" gorm:"foreignKey:RoleID"`
	CreatedAt    time.Time `json:"created_at" gorm:"autoCreateTime"`
}
