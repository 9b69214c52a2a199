package services

import (
	"context"
	"errors"
	"time"

	"github.com/golang-jwt/jwt/v5"
	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/bson/primitive"
	"go.mongodb.org/mongo-driver/mongo"
	"go.mongodb.org/mongo-driver/mongo/options"
	"golang.org/x/crypto/bcrypt"

	"github.com/fleetdesk/FleetDesk/internal/apperr"
	"github.com/fleetdesk/FleetDesk/internal/db"
	"github.com/fleetdesk/FleetDesk/internal/models"
	"github.com/fleetdesk/FleetDesk/internal/utils"
)

const minPasswordLength = 6

// AuthService owns the users collection and the token lifecycle.
type AuthService struct {
	users    *mongo.Collection
	secret   []byte
	tokenTTL time.Duration
	resetTTL time.Duration
}

func NewAuthService(database *mongo.Database, secret string, tokenTTL, resetTTL time.Duration) *AuthService {
	return &AuthService{
		users:    database.Collection("users"),
		secret:   []byte(secret),
		tokenTTL: tokenTTL,
		resetTTL: resetTTL,
	}
}

// HashPassword hashes a password using bcrypt.
func HashPassword(password string) (string, error) {
	hash, err := bcrypt.GenerateFromPassword([]byte(password), bcrypt.DefaultCost)
	return string(hash), err
}

// VerifyPassword compares a plain password with a hashed password.
func VerifyPassword(password, hash string) bool {
	return bcrypt.CompareHashAndPassword([]byte(hash), []byte(password)) == nil
}

// GenerateToken issues an access token embedding the user's id, email and role.
func (s *AuthService) GenerateToken(user models.User) (string, error) {
	claims := jwt.MapClaims{
		"userId": user.ID.Hex(),
		"email":  user.Email,
		"role":   user.Role,
		"exp":    time.Now().Add(s.tokenTTL).Unix(),
	}
	token := jwt.NewWithClaims(jwt.SigningMethodHS256, claims)
	return token.SignedString(s.secret)
}

// GenerateResetToken issues a short-lived single-purpose password-reset token.
func (s *AuthService) GenerateResetToken(userID primitive.ObjectID) (string, error) {
	claims := jwt.MapClaims{
		"userId": userID.Hex(),
		"type":   "reset",
		"exp":    time.Now().Add(s.resetTTL).Unix(),
	}
	token := jwt.NewWithClaims(jwt.SigningMethodHS256, claims)
	return token.SignedString(s.secret)
}

// ParseToken verifies signature and expiry and returns the claims.
func (s *AuthService) ParseToken(tokenString string) (jwt.MapClaims, error) {
	token, err := jwt.Parse(tokenString, func(t *jwt.Token) (interface{}, error) {
		if _, ok := t.Method.(*jwt.SigningMethodHMAC); !ok {
			return nil, errors.New("unexpected signing method")
		}
		return s.secret, nil
	})
	if err != nil || !token.Valid {
		return nil, apperr.Authentication("Invalid or expired token")
	}
	claims, ok := token.Claims.(jwt.MapClaims)
	if !ok {
		return nil, apperr.Authentication("Invalid token claims")
	}
	return claims, nil
}

// VerifyResetToken checks the reset tag on top of normal verification. A
// validly signed access token is still rejected here.
func (s *AuthService) VerifyResetToken(tokenString string) (primitive.ObjectID, error) {
	claims, err := s.ParseToken(tokenString)
	if err != nil {
		return primitive.NilObjectID, apperr.Validation("Invalid or expired reset token")
	}
	if kind, _ := claims["type"].(string); kind != "reset" {
		return primitive.NilObjectID, apperr.Validation("Invalid reset token")
	}
	idHex, _ := claims["userId"].(string)
	id, err := primitive.ObjectIDFromHex(idHex)
	if err != nil {
		return primitive.NilObjectID, apperr.Validation("Invalid reset token")
	}
	return id, nil
}

// Register creates a new user and returns it with a fresh access token.
func (s *AuthService) Register(ctx context.Context, email, password, businessName, role string) (models.User, string, error) {
	email = utils.NormalizeEmail(email)
	if email == "" || password == "" || businessName == "" {
		return models.User{}, "", apperr.Validation("Email, password, and business name are required")
	}
	if len(password) < minPasswordLength {
		return models.User{}, "", apperr.Validation("Password must be at least 6 characters long")
	}
	if role != models.RoleAdmin {
		role = models.RoleUser
	}

	now := time.Now()
	user := models.User{
		ID:           primitive.NewObjectID(),
		Email:        email,
		Role:         role,
		BusinessName: businessName,
		CreatedAt:    now,
		UpdatedAt:    now,
	}
	if err := validateStruct(user); err != nil {
		return models.User{}, "", err
	}

	hashed, err := HashPassword(password)
	if err != nil {
		return models.User{}, "", apperr.Internal("Registration failed", err)
	}
	user.Password = hashed

	if _, err := s.users.InsertOne(ctx, user); err != nil {
		if db.IsDuplicateKey(err) {
			return models.User{}, "", apperr.Conflict("User with this email already exists")
		}
		return models.User{}, "", apperr.Internal("Registration failed", err)
	}

	token, err := s.GenerateToken(user)
	if err != nil {
		return models.User{}, "", apperr.Internal("Registration failed", err)
	}
	return user, token, nil
}

// Login verifies credentials and returns the user with an access token. The
// error never distinguishes a missing user from a wrong password.
func (s *AuthService) Login(ctx context.Context, email, password string) (models.User, string, error) {
	var user models.User
	err := s.users.FindOne(ctx, bson.M{"email": utils.NormalizeEmail(email)}).Decode(&user)
	if err != nil {
		return models.User{}, "", apperr.Authentication("Invalid credentials")
	}
	if !VerifyPassword(password, user.Password) {
		return models.User{}, "", apperr.Authentication("Invalid credentials")
	}

	token, err := s.GenerateToken(user)
	if err != nil {
		return models.User{}, "", apperr.Internal("Login failed", err)
	}
	return user, token, nil
}

// UserByID loads a user by its hex id.
func (s *AuthService) UserByID(ctx context.Context, id primitive.ObjectID) (models.User, error) {
	var user models.User
	if err := s.users.FindOne(ctx, bson.M{"_id": id}).Decode(&user); err != nil {
		return models.User{}, apperr.NotFound("User not found")
	}
	return user, nil
}

// Users returns projections of every account, newest first. Admin only.
func (s *AuthService) Users(ctx context.Context) ([]models.UserView, error) {
	cursor, err := s.users.Find(ctx, bson.M{},
		options.Find().SetSort(bson.D{{Key: "createdAt", Value: -1}}))
	if err != nil {
		return nil, apperr.Internal("Failed to retrieve users", err)
	}
	defer cursor.Close(ctx)

	var all []models.User
	if err := cursor.All(ctx, &all); err != nil {
		return nil, apperr.Internal("Failed to retrieve users", err)
	}

	views := make([]models.UserView, len(all))
	for i, u := range all {
		views[i] = u.View()
	}
	return views, nil
}

// ForgotPassword issues a reset token for the account behind the email.
func (s *AuthService) ForgotPassword(ctx context.Context, email string) (string, error) {
	if email == "" {
		return "", apperr.Validation("Email is required")
	}
	var user models.User
	err := s.users.FindOne(ctx, bson.M{"email": utils.NormalizeEmail(email)}).Decode(&user)
	if err != nil {
		return "", apperr.NotFound("No user found with this email address")
	}
	token, err := s.GenerateResetToken(user.ID)
	if err != nil {
		return "", apperr.Internal("Failed to process password reset request", err)
	}
	return token, nil
}

// ResetPassword redeems a reset token and replaces the password hash.
func (s *AuthService) ResetPassword(ctx context.Context, token, newPassword string) error {
	if token == "" || newPassword == "" {
		return apperr.Validation("Reset token and new password are required")
	}
	if len(newPassword) < minPasswordLength {
		return apperr.Validation("Password must be at least 6 characters long")
	}

	userID, err := s.VerifyResetToken(token)
	if err != nil {
		return err
	}

	hashed, err := HashPassword(newPassword)
	if err != nil {
		return apperr.Internal("Failed to reset password", err)
	}

	res, err := s.users.UpdateOne(ctx, bson.M{"_id": userID}, bson.M{"$set": bson.M{
		"password":  hashed,
		"updatedAt": time.Now(),
	}})
	if err != nil {
		return apperr.Internal("Failed to reset password", err)
	}
	if res.MatchedCount == 0 {
		return apperr.NotFound("User not found")
	}
	return nil
}
