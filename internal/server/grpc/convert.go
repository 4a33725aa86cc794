package grpc

import (
	"time"

	"google.golang.org/protobuf/types/known/timestamppb"

	pb "github.com/dmitrijs2005/vaultshare/internal/proto"
	"github.com/dmitrijs2005/vaultshare/internal/server/models"
	"github.com/dmitrijs2005/vaultshare/internal/server/notify"
)

func blobFromPB(b *pb.VaultBlob) models.VaultBlob {
	return models.VaultBlob{
		Ciphertext: b.GetCiphertext(),
		IV:         b.GetIv(),
		AuthTag:    b.GetAuthTag(),
		KDFSalt:    b.GetKdfSalt(),
	}
}

func vaultToPB(v *models.Vault) *pb.Vault {
	if v == nil {
		return nil
	}
	return &pb.Vault{
		Id:      v.ID,
		OwnerId: v.OwnerID,
		Blob: &pb.VaultBlob{
			Ciphertext: v.Ciphertext,
			Iv:         v.IV,
			AuthTag:    v.AuthTag,
			KdfSalt:    v.KDFSalt,
		},
		Version:      v.Version,
		LastSyncedAt: timestamppb.New(v.LastSyncedAt),
		CreatedAt:    timestamppb.New(v.CreatedAt),
		UpdatedAt:    timestamppb.New(v.UpdatedAt),
	}
}

func syncToPB(o *models.SyncOutcome) *pb.SyncVaultResponse {
	return &pb.SyncVaultResponse{
		Status:         string(o.Status),
		NewVersion:     o.NewVersion,
		ServerVersion:  o.ServerVersion,
		ClientVersion:  o.ClientVersion,
		ServerSnapshot: vaultToPB(o.ServerSnapshot),
	}
}

func permissionToPB(p models.Permission) *pb.Permission {
	return &pb.Permission{CanView: p.CanView, CanSave: p.CanSave, IsRevocable: p.IsRevocable}
}

// optionalTime leaves unset moments unset on the wire.
func optionalTime(t *time.Time) *timestamppb.Timestamp {
	if t == nil {
		return nil
	}
	return timestamppb.New(*t)
}

// shareToPB includes the envelope only when withEnvelope is set.
func shareToPB(s *models.Share, withEnvelope bool) *pb.Share {
	out := &pb.Share{
		Kind:        string(models.KindShare),
		Id:          s.ID,
		Mode:        string(s.Mode.Kind()),
		FromId:      s.FromID,
		ToId:        s.ToID(),
		PasswordRef: s.PasswordRef,
		Permission:  permissionToPB(s.Permission),
		Status:      string(s.Status),
		CreatedAt:   timestamppb.New(s.CreatedAt),
		ExpiresAt:   timestamppb.New(s.ExpiresAt),
		AcceptedAt:  optionalTime(s.AcceptedAt),
		RevokedAt:   optionalTime(s.RevokedAt),
	}
	if withEnvelope {
		out.Envelope = s.Payload
	}
	return out
}

func contactToPB(c *models.ContactShare, withEnvelope bool) *pb.Share {
	out := &pb.Share{
		Kind:        string(models.KindContactShare),
		Id:          c.ID,
		FromId:      c.FromID,
		ToId:        c.ToID,
		PasswordRef: c.PasswordRef,
		Permission:  permissionToPB(c.Permission),
		Status:      string(c.Status),
		CreatedAt:   timestamppb.New(c.CreatedAt),
		ExpiresAt:   timestamppb.New(c.ExpiresAt),
		AcceptedAt:  optionalTime(c.AcceptedAt),
		RevokedAt:   optionalTime(c.RevokedAt),
	}
	if withEnvelope {
		out.Envelope = c.Payload
	}
	return out
}

func summariesToPB(list []models.ShareSummary) *pb.ListSharesResponse {
	out := &pb.ListSharesResponse{Shares: make([]*pb.Share, 0, len(list))}
	for _, s := range list {
		out.Shares = append(out.Shares, &pb.Share{
			Kind:        string(s.Kind),
			Id:          s.ID,
			Mode:        string(s.Mode),
			FromId:      s.FromID,
			ToId:        s.ToID,
			PasswordRef: s.PasswordRef,
			Permission:  permissionToPB(s.Permission),
			Status:      string(s.Status),
			CreatedAt:   timestamppb.New(s.CreatedAt),
			ExpiresAt:   timestamppb.New(s.ExpiresAt),
		})
	}
	return out
}

func historyToPB(entries []*models.AuditEntry) *pb.HistoryResponse {
	out := &pb.HistoryResponse{Entries: make([]*pb.AuditEntry, 0, len(entries))}
	for _, e := range entries {
		out.Entries = append(out.Entries, &pb.AuditEntry{
			Id:          e.ID,
			ShareId:     e.ShareID,
			ShareKind:   string(e.ShareKind),
			Action:      string(e.Action),
			PerformedBy: e.PerformedBy,
			At:          timestamppb.New(e.At),
		})
	}
	return out
}

func eventToPB(ev notify.Event) *pb.Event {
	return &pb.Event{
		Type:      ev.Type,
		ShareId:   ev.ShareID,
		ShareKind: string(ev.ShareKind),
		Actor:     ev.Actor,
		At:        timestamppb.New(ev.At),
	}
}

func ttl(seconds int64) time.Duration {
	return time.Duration(seconds) * time.Second
}
