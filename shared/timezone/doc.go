// Package timezone keeps the application timezone loaded from APP_TIMEZONE.
//
// Stored instants stay in UTC. Use Now for new timestamps and Format when an
// instant is rendered for a reader, for example on the booking dashboard:
//
//	created := timezone.Format(booking.CreatedAt, constant.DateFormat)
//
// Event dates typed by customers are calendar days and are parsed with Parse
// so they land on midnight in the application timezone.
package timezone
