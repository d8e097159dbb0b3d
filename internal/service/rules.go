// Package service implements the application's business operations on top of
// the repository layer.
package service

import (
	"quill/internal/models"
)

// passwordsMatch is the single place where a supplied password is compared
// against a stored one. Comparison is plain string equality: passwords are
// neither hashed nor salted anywhere in this system. That is a known
// defect kept for compatibility; a hardening pass replaces this one function.
func passwordsMatch(supplied, stored string) bool {
	return supplied == stored
}

// authorizeUser gates user mutation and deletion on the account password.
func authorizeUser(user *models.User, password string) error {
	if !passwordsMatch(password, user.Password) {
		return models.NewForbiddenError("Wrong password")
	}
	return nil
}

// authorizePost gates post mutation and deletion on author identity.
func authorizePost(post *models.Post, authorID string) error {
	if authorID != post.AuthorID {
		return models.NewForbiddenError("Only the post author may modify this post")
	}
	return nil
}

// authorizeCommentUpdate requires both the author identity and the comment
// owner's password.
func authorizeCommentUpdate(comment *models.Comment, owner *models.User, authorID, password string) error {
	if authorID != comment.AuthorID || !passwordsMatch(password, owner.Password) {
		return models.NewForbiddenError("Insufficient permission for this comment or wrong password")
	}
	return nil
}

// authorizeCommentDelete requires only the author identity. Deletion is a
// weaker check than update on purpose.
func authorizeCommentDelete(comment *models.Comment, authorID string) error {
	if authorID != comment.AuthorID {
		return models.NewForbiddenError("Only the comment author may delete this comment")
	}
	return nil
}
