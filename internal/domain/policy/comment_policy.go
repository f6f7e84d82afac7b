package policy

import (
	"skillhub/internal/domain/entity"
	"skillhub/internal/domain/fault"
)

// CommentPolicy encapsulates the rules for comment manipulation.
type CommentPolicy struct{}

func NewCommentPolicy() *CommentPolicy {
	return &CommentPolicy{}
}

// CanModify checks if 'actor' may update or delete 'comment'.
func (p *CommentPolicy) CanModify(actor *entity.User, comment *entity.Comment) *fault.Error {
	if actor.Roles.Has(admin) || actor.Owns(comment.AuthorID) {
		return nil
	}
	return fault.Forbidden("only the comment author can modify this comment")
}
