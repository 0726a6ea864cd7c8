package commands

import (
	"hotel-frontdesk/internal/domain/booking"
	"hotel-frontdesk/internal/domain/menu"
	"hotel-frontdesk/internal/domain/money"
	"hotel-frontdesk/internal/domain/room"
	"hotel-frontdesk/internal/domain/user"
	"hotel-frontdesk/internal/usecase/shared"
)

// Snapshots come from our own tables, so their enum values are trusted.

func roomFromSnapshot(s *shared.RoomSnapshot) *room.Room {
	return room.ReconstructRoom(
		s.ID, s.Number, s.RoomTypeID, money.FromCents(s.PriceCents), room.Status(s.Status),
		s.ReservationDate, s.CheckOutDate, s.CreatedAt, s.UpdatedAt,
	)
}

func bookingFromSnapshot(s *shared.BookingSnapshot) (*booking.Booking, error) {
	guest, err := booking.NewGuest(s.GuestName, s.GuestPhone, s.GuestEmail, s.GuestIDNumber, s.GuestAddress)
	if err != nil {
		return nil, err
	}
	return booking.ReconstructBooking(
		s.ID, s.RoomID, guest, s.CheckIn, s.CheckOut, s.Nights,
		money.FromCents(s.PriceCents), money.FromCents(s.TotalCents),
		booking.PaymentMethod(s.PaymentMethod), booking.PaymentStatus(s.PaymentStatus), booking.Status(s.Status),
		s.ReceivedBy, s.Notes, s.CreatedAt, s.UpdatedAt,
	), nil
}

func userFromSnapshot(s *shared.UserSnapshot) (*user.User, error) {
	email, err := user.NewEmail(s.Email)
	if err != nil {
		return nil, err
	}
	return user.ReconstructUser(
		s.ID, email, s.FullName, s.PasswordHash, user.Role(s.Role),
		s.LastLogin, s.IsActive, s.CreatedAt, s.UpdatedAt,
	), nil
}

func menuItemFromSnapshot(s *shared.MenuItemSnapshot) *menu.Item {
	return menu.ReconstructItem(
		s.ID, s.Name, menu.Category(s.Category), money.FromCents(s.PriceCents),
		s.Available, s.Description, s.CreatedAt, s.UpdatedAt,
	)
}
